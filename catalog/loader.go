package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/poiesic/pubcat/core"
)

// Column names read from the source header.
const (
	TitleColumn = "Title"
	LinkColumn  = "Link"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RawRow is one data row keyed by header column name.
// Columns absent from a short row are absent from the map.
type RawRow map[string]string

// field returns the value for a column, matching header names
// case-insensitively and ignoring surrounding whitespace.
func (r RawRow) field(name string) string {
	if r == nil {
		return ""
	}
	if v, ok := r[name]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return v
		}
	}
	return ""
}

// Load normalizes raw rows into a catalog of the same length and order.
// Empty or whitespace-only titles and links are replaced by placeholders.
func Load(rawRows []RawRow) *core.Catalog {
	pubs := make([]core.Publication, len(rawRows))
	for i, row := range rawRows {
		title := strings.TrimSpace(row.field(TitleColumn))
		link := strings.TrimSpace(row.field(LinkColumn))
		pubs[i] = core.NewPublication(title, link)
	}
	return core.NewCatalog(pubs)
}

// Parse reads header-keyed rows from CSV.
//
// Empty lines are skipped. Rows with fewer fields than the header leave the
// trailing columns absent; extra fields are dropped. Only a missing header or
// a stream that cannot be tokenized as CSV is an error.
func Parse(r io.Reader) ([]RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]RawRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(RawRow, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadSource fetches, parses and loads a catalog in one step.
// Any failure is reported as a *LoadError.
func LoadSource(ctx context.Context, source string) (*core.Catalog, error) {
	rc, err := Fetch(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer rc.Close()

	rows, err := Parse(rc)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return Load(rows), nil
}
