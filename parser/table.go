package parser

import (
	"io"
	"strings"
)

// Table is an indexed view over a CSV file's rows: the rows in file order
// plus a primary-key index and any number of named secondary indices,
// built once so validators can look rows up instead of rescanning the
// file for every check.
type Table struct {
	Filename string
	Rows     []CSVRow

	primaryKeyFields []string
	primaryKeyIndex  map[string][]int // composite key -> row indices, in encounter order

	secondary map[string]map[string][]int // index name -> field value -> row indices
}

// BuildTable reads every remaining row from csvFile and indexes it by
// primaryKeyFields. Pass no fields to build an unkeyed table that only
// tracks row order.
func BuildTable(csvFile *CSVFile, primaryKeyFields []string) (*Table, error) {
	t := &Table{
		Filename:         csvFile.Filename,
		primaryKeyFields: primaryKeyFields,
		primaryKeyIndex:  make(map[string][]int),
		secondary:        make(map[string]map[string][]int),
	}

	for {
		row, err := csvFile.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		idx := len(t.Rows)
		t.Rows = append(t.Rows, *row)

		if len(primaryKeyFields) > 0 {
			key := compositeKey(row, primaryKeyFields)
			t.primaryKeyIndex[key] = append(t.primaryKeyIndex[key], idx)
		}
	}

	return t, nil
}

func compositeKey(row *CSVRow, fields []string) string {
	if len(fields) == 1 {
		return row.Values[fields[0]]
	}
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(row.Values[field])
	}
	return b.String()
}

// PrimaryKeyFields returns the fields this table is keyed on.
func (t *Table) PrimaryKeyFields() []string {
	return t.primaryKeyFields
}

// Lookup returns the row indices sharing a primary key value.
func (t *Table) Lookup(key string) ([]int, bool) {
	idxs, ok := t.primaryKeyIndex[key]
	return idxs, ok
}

// Duplicates returns every primary key value that appears on more than one
// row, mapped to the row indices (in encounter order) that share it.
func (t *Table) Duplicates() map[string][]int {
	dups := make(map[string][]int)
	for key, idxs := range t.primaryKeyIndex {
		if len(idxs) > 1 {
			dups[key] = idxs
		}
	}
	return dups
}

// Row returns the first row carrying the given primary key value, the C9
// row(table, primary_key) operation. When key collides across rows (see
// Duplicates), the earliest occurrence wins.
func (t *Table) Row(key string) (*CSVRow, bool) {
	idxs, ok := t.primaryKeyIndex[key]
	if !ok || len(idxs) == 0 {
		return nil, false
	}
	return &t.Rows[idxs[0]], true
}

// All returns every row in the table in file order, the C9 iteration
// operation.
func (t *Table) All() []CSVRow {
	return t.Rows
}

// BuildIndex creates (or replaces) a named secondary index keyed by field's
// value on each row. Used for fast foreign-key existence checks against
// fields that aren't the table's own primary key.
func (t *Table) BuildIndex(name, field string) {
	idx := make(map[string][]int)
	for i := range t.Rows {
		v := t.Rows[i].Values[field]
		idx[v] = append(idx[v], i)
	}
	t.secondary[name] = idx
}

// HasValue reports whether the named secondary index contains key.
func (t *Table) HasValue(name, key string) bool {
	idx, ok := t.secondary[name]
	if !ok {
		return false
	}
	_, found := idx[key]
	return found
}

// Feed is a name-keyed view over a GTFS feed's already-built tables, so
// cross-file validators can resolve a foreign key by filename instead of
// threading individual tables through every call.
type Feed struct {
	tables map[string]*Table
}

// NewFeed wraps a set of tables, keyed by the GTFS filename each was built
// from (e.g. "stops.txt").
func NewFeed(tables map[string]*Table) *Feed {
	return &Feed{tables: tables}
}

// Table returns the named file's table, or nil if it was never built.
func (f *Feed) Table(filename string) *Table {
	return f.tables[filename]
}

// Row resolves filename's table and returns the row carrying the given
// primary key value. Reports false if the file has no table or the key
// isn't present, covering the same ground as Table.Row without requiring
// the caller to fetch the table first.
func (f *Feed) Row(filename, key string) (*CSVRow, bool) {
	t := f.tables[filename]
	if t == nil {
		return nil, false
	}
	return t.Row(key)
}

// Filenames returns every file this feed holds a table for. Order is
// unspecified; callers that need a stable order should sort the result.
func (f *Feed) Filenames() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	return names
}

// HasReference reports whether filename's named secondary index contains
// key. A table that was never built reports true (fail open): a missing
// file is a separate, dedicated notice, not a reference violation.
func (f *Feed) HasReference(filename, indexName, key string) bool {
	t := f.tables[filename]
	if t == nil {
		return true
	}
	return t.HasValue(indexName, key)
}
