package cli

import (
	"io"
	"os"

	"github.com/khalid-nowaf/runetrie/pkg/shell"
	"golang.org/x/term"
)

type ShellCmd struct {
	WordsFlags
}

func (cmd *ShellCmd) Run(ctx *Context) error {
	t, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, oldState)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	return shell.New(rw, t, ctx.Logger).Run()
}
