// Package wordlist reads and writes word lists as plain text, CSV, TSV or JSON.
package wordlist

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format of a word list file.
type Format string

const (
	Auto Format = "auto" // picked from the file extension
	Text Format = "text" // one word per line
	CSV  Format = "csv"  // header row, words in the configured column
	TSV  Format = "tsv"
	JSON Format = "json" // array of strings or of objects holding the configured key
)

// ErrUnknownFormat is returned for formats this package can not read or write.
var ErrUnknownFormat = errors.New("unknown word list format")

// Record is one row of a CSV file or one object of a JSON file.
type Record map[string]string

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Auto, Text, CSV, TSV, JSON:
		return f, nil
	case "":
		return Auto, nil
	case "txt":
		return Text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath detects the format from the file extension, anything unknown is text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".tsv":
		return TSV
	case ".json":
		return JSON
	}
	return Text
}

// ReadFile opens path and calls onEachWord for every word in it.
func ReadFile(path string, format Format, column string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == Auto || format == "" {
		format = FormatFromPath(path)
	}
	if err := Read(file, format, column, onEachWord); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Read streams the words of r to onEachWord, stopping at the first error it returns.
// column names the CSV field or JSON key holding the word.
func Read(r io.Reader, format Format, column string, onEachWord func(word string) error) error {
	switch format {
	case Text, Auto, "":
		return parseText(r, onEachWord)
	case CSV:
		return parseCsv(r, ',', column, onEachWord)
	case TSV:
		return parseCsv(r, '\t', column, onEachWord)
	case JSON:
		return parseJson(r, column, onEachWord)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// blank lines are skipped.
func parseText(r io.Reader, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCsv(r io.Reader, separator rune, column string, onEachWord func(word string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator

	// the header builds the key mapping
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	for line := 2; ; line++ {
		recordData, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, found := record[column]
		if !found {
			return fmt.Errorf("line %d: no %q column in record: %v", line, column, record)
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
}

func parseJson(r io.Reader, column string, onEachWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for i := 0; decoder.More(); i++ {
		var element json.RawMessage
		if err := decoder.Decode(&element); err != nil {
			return err
		}

		word, err := wordFromJson(element, column)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func wordFromJson(element json.RawMessage, column string) (string, error) {
	var word string
	if err := json.Unmarshal(element, &word); err == nil {
		return word, nil
	}

	var record map[string]any
	if err := json.Unmarshal(element, &record); err != nil {
		return "", fmt.Errorf("expected a string or an object, got %s", element)
	}
	value, found := record[column]
	if !found {
		return "", fmt.Errorf("no %q key in object: %s", column, element)
	}
	word, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string in object: %s", column, element)
	}
	return word, nil
}
