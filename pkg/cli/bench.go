package cli

import (
	"fmt"

	"github.com/khalid-nowaf/runetrie/pkg/bench"
)

type BenchCmd struct {
	Count    int    `help:"Number of random words, defaults to the configuration."`
	Min      int    `help:"Minimum word length in runes, defaults to the configuration."`
	Max      int    `help:"Maximum word length in runes, defaults to the configuration."`
	Alphabet string `help:"Runes the words are made of, defaults to the configuration."`
	Seed     uint64 `help:"Random seed, 0 picks one."`
	Strict   bool   `help:"Fail on the first word that can not be removed."`
}

func (cmd *BenchCmd) Run(ctx *Context) error {
	defaults := ctx.Config.Bench
	cfg := bench.Config{
		Count:    firstPositive(cmd.Count, defaults.Count),
		MinLen:   firstPositive(cmd.Min, defaults.MinLen),
		MaxLen:   firstPositive(cmd.Max, defaults.MaxLen),
		Alphabet: firstNonEmpty(cmd.Alphabet, defaults.Alphabet),
		Seed:     cmd.Seed,
		Strict:   cmd.Strict,
	}
	if cmd.Seed == 0 {
		cfg.Seed = defaults.Seed
	}
	if cfg.MaxLen < cfg.MinLen {
		return fmt.Errorf("invalid length range: [%d, %d]", cfg.MinLen, cfg.MaxLen)
	}

	report, err := bench.Run(cfg, ctx.Logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "seed:     %d\n", report.Seed)
	fmt.Fprintf(ctx.Out, "words:    %d\n", report.Count)
	fmt.Fprintf(ctx.Out, "nodes:    %d\n", report.Nodes)
	fmt.Fprintf(ctx.Out, "insert:   %d ms\n", report.Insert.Milliseconds())
	fmt.Fprintf(ctx.Out, "retrieve: %d ms\n", report.Retrieve.Milliseconds())
	fmt.Fprintf(ctx.Out, "remove:   %d ms\n", report.Remove.Milliseconds())
	if report.Missing > 0 {
		fmt.Fprintf(ctx.Out, "missing:  %d\n", report.Missing)
	}
	return nil
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}
