package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/khalid-nowaf/runetrie/pkg/wordlist"
)

type CutCmd struct {
	Prefix string `arg:"" help:"Prefix to cut off."`
	WordsFlags
	Out          string `help:"Directory the results are written to." type:"path" default:"."`
	OutputFormat string `help:"Format of the result files (text, csv, tsv, json)." default:"text" enum:"text,csv,tsv,json"`
}

// Run writes the suffixes found below the prefix to removed.<ext>
// and every other word to remaining.<ext>.
func (cmd *CutCmd) Run(ctx *Context) error {
	t, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	removed, err := t.RemoveSuffixes(cmd.Prefix)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cmd.Out, 0o755); err != nil {
		return err
	}

	format := wordlist.Format(cmd.OutputFormat)
	column := firstNonEmpty(cmd.Column, ctx.Config.Words.Column)
	extension := "." + cmd.OutputFormat
	if format == wordlist.Text {
		extension = ".txt"
	}

	ctx.Logger.Info().Str("dir", cmd.Out).Msg("Starting to write results...")

	removedPath := filepath.Join(cmd.Out, "removed"+extension)
	removedCount, err := wordlist.WriteFile(removedPath, format, column, removed.Content(""))
	if err != nil {
		return err
	}

	remainingPath := filepath.Join(cmd.Out, "remaining"+extension)
	remainingCount, err := wordlist.WriteFile(remainingPath, format, column, t.Content(""))
	if err != nil {
		return err
	}

	ctx.Logger.Info().
		Int("removed", removedCount).
		Int("remaining", remainingCount).
		Msg("Writing complete.")
	fmt.Fprintf(ctx.Out, "%d removed -> %s\n%d remaining -> %s\n", removedCount, removedPath, remainingCount, remainingPath)
	return nil
}
