package wordlist

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
)

// Write writes words to w and returns how many were written.
// CSV and TSV get a single column header, JSON gets an array of objects keyed by column.
func Write(w io.Writer, format Format, column string, words iter.Seq[string]) (int, error) {
	switch format {
	case Text, Auto, "":
		return writeText(w, words)
	case CSV:
		return writeCsv(w, ',', column, words)
	case TSV:
		return writeCsv(w, '\t', column, words)
	case JSON:
		return writeJson(w, column, words)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile creates path and writes words to it.
func WriteFile(path string, format Format, column string, words iter.Seq[string]) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if format == Auto || format == "" {
		format = FormatFromPath(path)
	}
	written, err := Write(file, format, column, words)
	if err != nil {
		return written, fmt.Errorf("%s: %w", path, err)
	}
	return written, file.Close()
}

func writeText(w io.Writer, words iter.Seq[string]) (int, error) {
	writer := bufio.NewWriter(w)
	written := 0
	for word := range words {
		if _, err := writer.WriteString(word + "\n"); err != nil {
			return written, err
		}
		written++
	}
	return written, writer.Flush()
}

func writeCsv(w io.Writer, separator rune, column string, words iter.Seq[string]) (int, error) {
	writer := csv.NewWriter(w)
	writer.Comma = separator

	if err := writer.Write([]string{column}); err != nil {
		return 0, err
	}

	written := 0
	for word := range words {
		if err := writer.Write([]string{word}); err != nil {
			return written, err
		}
		written++
	}
	writer.Flush()
	return written, writer.Error()
}

func writeJson(w io.Writer, column string, words iter.Seq[string]) (int, error) {
	encoder := json.NewEncoder(w)

	if _, err := w.Write([]byte("[")); err != nil {
		return 0, err
	}

	written := 0
	for word := range words {
		if written > 0 {
			if _, err := w.Write([]byte(",")); err != nil {
				return written, err
			}
		}
		if err := encoder.Encode(Record{column: word}); err != nil {
			return written, err
		}
		written++
	}

	_, err := w.Write([]byte("]"))
	return written, err
}
