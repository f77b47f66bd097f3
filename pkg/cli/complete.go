package cli

import (
	"iter"
	"slices"

	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/khalid-nowaf/runetrie/pkg/wordlist"
)

type CompleteCmd struct {
	Prefix string `arg:"" optional:"" help:"Prefix to complete, everything when omitted."`
	WordsFlags
	Suffixes     bool   `help:"Print only what follows the prefix."`
	Sorted       bool   `help:"Sort the output, enumeration order is arbitrary otherwise."`
	Limit        int    `help:"Stop after this many words, 0 means no limit." default:"0"`
	OutputFormat string `help:"Output format (text, csv, tsv, json)." default:"text" enum:"text,csv,tsv,json"`
}

func (cmd *CompleteCmd) Run(ctx *Context) error {
	t, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	it := t.IterContent(cmd.Prefix)
	if cmd.Suffixes {
		it = t.IterSuffixes(cmd.Prefix)
	}

	column := firstNonEmpty(cmd.Column, ctx.Config.Words.Column)
	written, err := wordlist.Write(ctx.Out, wordlist.Format(cmd.OutputFormat), column, limited(it, cmd.Sorted, cmd.Limit))
	if err != nil {
		return err
	}
	ctx.Logger.Debug().Str("prefix", cmd.Prefix).Int("written", written).Msg("completion done")
	return nil
}

func limited(it *trie.Iterator, sorted bool, limit int) iter.Seq[string] {
	if sorted {
		return slices.Values(it.Sorted(limit))
	}
	return it.Limit(limit)
}
