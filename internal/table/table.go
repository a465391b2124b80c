// Package table implements the append-only CSV table store. A table file
// is UTF-8 text: the first line names the schema fields in order, and each
// following line holds one record's values in the same order. The file is
// created lazily on first append, only ever grows, and is re-parsed in full
// on every read.
package table

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Row is one record as an unordered field map. Field order lives in the
// codec's schema, not in the row.
type Row map[string]string

// Codec describes one record type's schema and its conversion to and from
// rows. Fields fixes the column order of both the header line and every
// record line.
type Codec[T any] struct {
	Fields []string
	Encode func(T) Row
	Decode func(Row) (T, error)
}

// DecodeError reports rows that failed validation during a read. The read
// is all-or-nothing: no partial results accompany a DecodeError.
type DecodeError struct {
	Path     string
	Messages []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding rows in %q: %s", e.Path, strings.Join(e.Messages, "; "))
}

// AppendRow encodes value and appends it to the table file at path,
// creating the file with a header line on first write. The probe-then-append
// sequence is serialized per path, so concurrent first writers cannot both
// emit a header.
func AppendRow[T any](path string, codec Codec[T], value T) error {
	lock := pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	line := joinFields(codec.Fields, codec.Encode(value))

	text := "\n" + line
	if !fileExists(path) {
		text = strings.Join(codec.Fields, ",") + "\n" + line
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("appending row %q to %q: %w", line, path, err)
	}
	_, err = f.WriteString(text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("appending row %q to %q: %w", line, path, err)
	}
	return nil
}

// ReadRows parses the whole table file at path and decodes every record
// line through the codec. A missing or empty file yields no records and no
// error. The first record that fails validation aborts the read with a
// DecodeError; partial results are never returned.
func ReadRows[T any](path string, codec Codec[T]) ([]T, error) {
	lock := pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading table file %q: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(string(data), "\n")
	header := strings.Split(lines[0], ",")

	var records []T
	for i, line := range lines[1:] {
		if line == "" {
			continue
		}
		record, err := codec.Decode(zipRow(header, strings.Split(line, ",")))
		if err != nil {
			return nil, &DecodeError{
				Path:     path,
				Messages: []string{fmt.Sprintf("row %d: %v", i+1, err)},
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// joinFields renders one record line with values in schema order. Fields
// the row does not carry render as empty values.
func joinFields(fields []string, row Row) string {
	values := make([]string, len(fields))
	for i, field := range fields {
		values[i] = row[field]
	}
	return strings.Join(values, ",")
}

// zipRow pairs header fields with record values positionally. Missing
// trailing values map to empty strings; surplus values are dropped.
func zipRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, field := range header {
		if i < len(values) {
			row[field] = values[i]
		} else {
			row[field] = ""
		}
	}
	return row
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
