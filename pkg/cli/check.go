package cli

import "fmt"

type CheckCmd struct {
	Items []string `arg:"" help:"Words to look up."`
	WordsFlags
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	t, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	for _, item := range cmd.Items {
		fmt.Fprintf(ctx.Out, "%s\tword=%t\tprefix=%t\n", item, t.Contains(item), t.ContainsPrefix(item))
	}
	return nil
}
