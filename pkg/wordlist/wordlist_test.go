package wordlist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string, format Format, column string) []string {
	t.Helper()
	words := []string{}
	err := Read(strings.NewReader(input), format, column, func(word string) error {
		words = append(words, word)
		return nil
	})
	require.NoError(t, err)
	return words
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		name     string
		expected Format
	}{
		{"", Auto},
		{"auto", Auto},
		{"TEXT", Text},
		{"txt", Text},
		{"csv", CSV},
		{"tsv", TSV},
		{"json", JSON},
	}
	for _, tc := range testCases {
		format, err := ParseFormat(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, format)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, CSV, FormatFromPath("words.CSV"))
	assert.Equal(t, TSV, FormatFromPath("/tmp/words.tsv"))
	assert.Equal(t, JSON, FormatFromPath("words.json"))
	assert.Equal(t, Text, FormatFromPath("words.txt"))
	assert.Equal(t, Text, FormatFromPath("words"))
}

func TestReadText(t *testing.T) {
	words := collect(t, "Hallo\r\n\nHallöchen\nHallo Welt\n", Text, "")
	assert.Equal(t, []string{"Hallo", "Hallöchen", "Hallo Welt"}, words)
}

func TestReadCsv(t *testing.T) {
	input := "id,word\n1,Hallo\n2,\"Hallo, Welt\"\n"
	assert.Equal(t, []string{"Hallo", "Hallo, Welt"}, collect(t, input, CSV, "word"))

	input = "id\tword\n1\tTschüs\n"
	assert.Equal(t, []string{"Tschüs"}, collect(t, input, TSV, "word"))
}

func TestReadCsvMissingColumn(t *testing.T) {
	err := Read(strings.NewReader("id,name\n1,Hallo\n"), CSV, "word", func(string) error { return nil })
	assert.ErrorContains(t, err, `no "word" column`)
}

func TestReadJson(t *testing.T) {
	assert.Equal(t, []string{"Hallo", "Tschüs"}, collect(t, `["Hallo", "Tschüs"]`, JSON, "word"))

	input := `[{"word": "Hallo", "lang": "de"}, {"word": "Hello"}]`
	assert.Equal(t, []string{"Hallo", "Hello"}, collect(t, input, JSON, "word"))
}

func TestReadJsonErrors(t *testing.T) {
	noop := func(string) error { return nil }

	assert.ErrorContains(t, Read(strings.NewReader(`[{"name": "x"}]`), JSON, "word", noop), `no "word" key`)
	assert.ErrorContains(t, Read(strings.NewReader(`[{"word": 1}]`), JSON, "word", noop), "is not a string")
	assert.ErrorContains(t, Read(strings.NewReader(`[1]`), JSON, "word", noop), "expected a string or an object")
	assert.Error(t, Read(strings.NewReader(`[`), JSON, "word", noop))
}

func TestReadStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Read(strings.NewReader("a\nb\nc\n"), Text, "", func(string) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReadUnknownFormat(t *testing.T) {
	err := Read(strings.NewReader(""), Format("xml"), "", func(string) error { return nil })
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteRoundTrip(t *testing.T) {
	words := []string{"Hallo", "Hallo, Welt", "Tschüs", "\"quoted\""}

	for _, format := range []Format{CSV, TSV, JSON} {
		var buf bytes.Buffer
		written, err := Write(&buf, format, "word", slices.Values(words))
		require.NoError(t, err, format)
		assert.Equal(t, len(words), written)
		assert.Equal(t, words, collect(t, buf.String(), format, "word"), format)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	written, err := Write(&buf, Text, "", slices.Values([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestWriteEmptyJson(t *testing.T) {
	var buf bytes.Buffer
	written, err := Write(&buf, JSON, "word", slices.Values([]string{}))
	require.NoError(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, []string{}, collect(t, buf.String(), JSON, "word"))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	words := []string{"Hallo", "Hallöchen"}

	for _, name := range []string{"words.txt", "words.csv", "words.json"} {
		path := filepath.Join(dir, name)
		written, err := WriteFile(path, Auto, "word", slices.Values(words))
		require.NoError(t, err, name)
		assert.Equal(t, 2, written)

		read := []string{}
		require.NoError(t, ReadFile(path, Auto, "word", func(word string) error {
			read = append(read, word)
			return nil
		}))
		assert.Equal(t, words, read, name)
	}
}

func TestReadFileMissing(t *testing.T) {
	err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), Auto, "", func(string) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}
