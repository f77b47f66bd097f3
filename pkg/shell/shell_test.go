package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerminal struct {
	io.Reader
	io.Writer
}

func newTestShell(words ...string) *Shell {
	rw := fakeTerminal{Reader: strings.NewReader(""), Writer: io.Discard}
	return New(rw, trie.From(words...), zerolog.Nop())
}

func exec(s *Shell, line string) string {
	var out bytes.Buffer
	s.Exec(&out, line)
	return out.String()
}

func TestComplete(t *testing.T) {
	tr := trie.From("Hallo", "Hallöchen", "Hallo Welt", "Tschüs")

	testCases := []struct {
		prefix   string
		expected string
	}{
		{"T", "Tschüs"},
		{"H", "Hall"},
		{"Hallo", "Hallo"},
		{"Hallo ", "Hallo Welt"},
		{"Hallö", "Hallöchen"},
		{"X", "X"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Complete(tr, tc.prefix), "prefix %q", tc.prefix)
	}
}

func TestAutoCompleteCallback(t *testing.T) {
	s := newTestShell("Hallo Welt", "Tschüs")

	line, pos, ok := s.complete("has Ha", 6, '\t')
	require.True(t, ok)
	assert.Equal(t, "has Hallo Welt", line)
	assert.Equal(t, len("has Hallo Welt"), pos)

	line, pos, ok = s.complete("pre", 3, '\t')
	require.True(t, ok)
	assert.Equal(t, "prefix", line)
	assert.Equal(t, 6, pos)

	line, _, ok = s.complete("has Ts!", 6, '\t')
	require.True(t, ok)
	assert.Equal(t, "has Tschüs!", line, "text after the cursor is kept")

	_, _, ok = s.complete("has X", 5, '\t')
	assert.False(t, ok, "nothing to complete")

	_, _, ok = s.complete("has Ha", 6, 'a')
	assert.False(t, ok, "only Tab completes")
}

func TestExec(t *testing.T) {
	s := newTestShell("Hallo", "Hallöchen", "Tschüs")

	assert.Equal(t, "added \"Hallo Welt\"\r\n", exec(s, "add Hallo Welt"))
	assert.Equal(t, "\"Hallo Welt\" already there\r\n", exec(s, "add Hallo Welt"))
	assert.Equal(t, "true\r\n", exec(s, "has Hallo Welt"))
	assert.Equal(t, "false\r\n", exec(s, "has Hall"))
	assert.Equal(t, "true\r\n", exec(s, "prefix Hall"))
	assert.Equal(t, "false\r\n", exec(s, "prefix ABC"))
	assert.Equal(t, "Hallo\r\nHallo Welt\r\nHallöchen\r\n", exec(s, "ls Hall"))
	assert.Equal(t, "4 words, 22 nodes\r\n", exec(s, "count"))

	assert.Equal(t, "removed \"Tschüs\"\r\n", exec(s, "del Tschüs"))
	assert.Contains(t, exec(s, "del Tschüs"), "not found")

	assert.Equal(t, "removed 2 words below \"Hallo\"\r\n", exec(s, "cut Hallo"))
	assert.Contains(t, exec(s, "cut Hallo"), "not found")
	assert.Equal(t, "Hallöchen\r\n", exec(s, "ls"))

	assert.Contains(t, exec(s, "help"), "insert a word")
	assert.Contains(t, exec(s, "frobnicate"), "unknown command")
	assert.Empty(t, exec(s, ""))

	var out bytes.Buffer
	assert.True(t, s.Exec(&out, "quit"))
	assert.True(t, s.Exec(&out, "exit"))
}

func TestListIsLimited(t *testing.T) {
	words := []string{}
	for i := 0; i < listLimit+10; i++ {
		words = append(words, "w"+strings.Repeat("x", i))
	}
	s := newTestShell(words...)

	output := exec(s, "ls w")
	assert.Equal(t, listLimit+1, strings.Count(output, "\r\n"))
	assert.Contains(t, output, "more words below")
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	input := strings.NewReader("add Hallo\rhas Hallo\rquit\radd never\r")
	s := New(fakeTerminal{Reader: input, Writer: &out}, trie.New(), zerolog.Nop())

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), `added "Hallo"`)
	assert.Contains(t, out.String(), "true")
	assert.NotContains(t, out.String(), `added "never"`)
	assert.True(t, s.trie.Contains("Hallo"))
}

func TestRunStopsAtEOF(t *testing.T) {
	s := New(fakeTerminal{Reader: strings.NewReader("add x\r"), Writer: io.Discard}, trie.New(), zerolog.Nop())
	require.NoError(t, s.Run())
	assert.True(t, s.trie.Contains("x"))
}
