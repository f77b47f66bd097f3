package cli

import (
	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/khalid-nowaf/runetrie/pkg/wordlist"
)

// WordsFlags select the word lists a command works on.
type WordsFlags struct {
	Words  []string `short:"w" type:"existingfile" help:"Word list file in text, CSV, TSV or JSON format, repeatable."`
	Format string   `help:"Format of the word lists (auto, text, csv, tsv, json), defaults to the configuration."`
	Column string   `help:"CSV column or JSON key holding the words, defaults to the configuration."`
}

// load parses every word list file into one trie.
func (f *WordsFlags) load(ctx *Context) (*trie.Trie, error) {
	format, err := wordlist.ParseFormat(firstNonEmpty(f.Format, ctx.Config.Words.Format))
	if err != nil {
		return nil, err
	}
	column := firstNonEmpty(f.Column, ctx.Config.Words.Column)

	t := trie.New()
	for _, file := range f.Words {
		count := 0
		err := wordlist.ReadFile(file, format, column, func(word string) error {
			t.Insert(word)
			count++
			return nil
		})
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug().Str("file", file).Int("words", count).Msg("word list loaded")
	}
	return t, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
