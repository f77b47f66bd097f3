// Package shell is an interactive prompt over a trie with Tab completion.
package shell

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const prompt = "trie> "

// how many words ls prints at most
const listLimit = 50

var commands = map[string]string{
	"add":    "add WORD          insert a word",
	"del":    "del WORD          remove a word",
	"has":    "has WORD          check if a word was inserted",
	"prefix": "prefix PREFIX     check if any word starts with PREFIX",
	"ls":     "ls [PREFIX]       list words starting with PREFIX",
	"cut":    "cut PREFIX        remove everything below PREFIX",
	"count":  "count             number of words and nodes",
	"help":   "help              show this help",
	"quit":   "quit              leave the shell",
}

type Shell struct {
	trie     *trie.Trie
	commands *trie.Trie
	terminal *term.Terminal
	logger   zerolog.Logger
}

// New creates a shell reading commands from rw. rw is usually a terminal in raw mode.
func New(rw io.ReadWriter, t *trie.Trie, logger zerolog.Logger) *Shell {
	s := &Shell{
		trie:     t,
		commands: trie.New(),
		terminal: term.NewTerminal(rw, prompt),
		logger:   logger,
	}
	for name := range commands {
		s.commands.Insert(name)
	}
	s.terminal.AutoCompleteCallback = s.complete
	return s
}

// Run reads and executes lines until quit or the end of the input.
func (s *Shell) Run() error {
	for {
		line, err := s.terminal.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := s.Exec(s.terminal, line); quit {
			return nil
		}
	}
}

// Exec runs a single command line and writes its output to out.
// It returns true when the shell should stop.
func (s *Shell) Exec(out io.Writer, line string) bool {
	name, arg, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
	s.logger.Debug().Str("command", name).Str("arg", arg).Msg("exec")

	switch name {
	case "":
	case "add":
		if s.trie.Contains(arg) {
			fmt.Fprintf(out, "%q already there\r\n", arg)
			return false
		}
		s.trie.Insert(arg)
		fmt.Fprintf(out, "added %q\r\n", arg)
	case "del":
		if err := s.trie.Remove(arg); err != nil {
			fmt.Fprintf(out, "error: %v\r\n", err)
			return false
		}
		fmt.Fprintf(out, "removed %q\r\n", arg)
	case "has":
		fmt.Fprintf(out, "%t\r\n", s.trie.Contains(arg))
	case "prefix":
		fmt.Fprintf(out, "%t\r\n", s.trie.ContainsPrefix(arg))
	case "ls":
		s.list(out, arg)
	case "cut":
		removed, err := s.trie.RemoveSuffixes(arg)
		if err != nil {
			fmt.Fprintf(out, "error: %v\r\n", err)
			return false
		}
		fmt.Fprintf(out, "removed %d words below %q\r\n", removed.Len(), arg)
	case "count":
		fmt.Fprintf(out, "%d words, %d nodes\r\n", s.trie.Len(), s.trie.NodeCount())
	case "help":
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s\r\n", commands[name])
		}
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q, try help\r\n", name)
	}
	return false
}

// list prints the first listLimit words found below prefix, sorted.
// The enumeration stops as soon as enough words were found.
func (s *Shell) list(out io.Writer, prefix string) {
	it := s.trie.IterContent(prefix)
	words := []string{}
	for len(words) < listLimit {
		word, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, word)
	}
	slices.Sort(words)

	for _, word := range words {
		fmt.Fprintf(out, "%s\r\n", word)
	}
	// pruning leaves no empty branches, anything pending holds at least one word
	if it.Pending() > 0 {
		fmt.Fprintf(out, "... more words below %q\r\n", prefix)
	}
}

// complete is the terminal's Tab handler. The first token is completed against the
// command names, anything after it against the words in the trie.
func (s *Shell) complete(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' {
		return "", 0, false
	}

	head, tail := line[:pos], line[pos:]
	name, arg, hasArg := strings.Cut(head, " ")

	var completed string
	if !hasArg {
		completed = Complete(s.commands, name)
		if completed == name {
			return "", 0, false
		}
	} else {
		completion := Complete(s.trie, arg)
		if completion == arg {
			return "", 0, false
		}
		completed = name + " " + completion
	}
	return completed + tail, len(completed), true
}

// Complete extends prefix to the longest string shared by every word starting with it.
// The prefix is returned as is if nothing starts with it.
func Complete(t *trie.Trie, prefix string) string {
	var common []rune
	first := true
	for suffix := range t.Suffixes(prefix) {
		if first {
			common, first = []rune(suffix), false
			continue
		}
		common = common[:sharedLength(common, []rune(suffix))]
		if len(common) == 0 {
			break
		}
	}
	return prefix + string(common)
}

func sharedLength(a []rune, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
