/*
Copyright © 2026 the NZIP analysis authors.
This file is part of the NZIP analysis toolkit.

The NZIP analysis toolkit is free software: you can redistribute it
and/or modify it under the terms of the GNU General Public License as
published by the Free Software Foundation, either version 3 of the
License, or (at your option) any later version.

The NZIP analysis toolkit is distributed in the hope that it will be
useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the NZIP analysis toolkit.  If not, see <http://www.gnu.org/licenses/>.
*/

package nzip

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Table is an ordered collection of named columns as read from a
// spreadsheet-like source, holding one cell per row per column. Cells
// are kept as raw text; numeric views are derived on demand, with
// blank or non-numeric cells read as NaN.
//
// A Table is never mutated after creation, so the operations in this
// package may be used concurrently on separate tables, and on a shared
// table as long as nothing writes to it.
type Table struct {
	names []string
	index map[string]int
	cells [][]string // column-major: cells[i][j] is row j of column i.
}

// NewTable creates a table from an ordered list of column names and
// row-major records. Every record must have one cell per column.
func NewTable(names []string, rows [][]string) (*Table, error) {
	t := &Table{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
		cells: make([][]string, len(names)),
	}
	copy(t.names, names)
	for i, n := range names {
		if _, ok := t.index[n]; ok {
			return nil, fmt.Errorf("nzip: duplicate column %q", n)
		}
		t.index[n] = i
		t.cells[i] = make([]string, len(rows))
	}
	for j, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("nzip: row %d has %d cells but the table has %d columns",
				j, len(row), len(names))
		}
		for i, c := range row {
			t.cells[i][j] = c
		}
	}
	return t, nil
}

// ColumnNames returns the table's column names in their original order.
func (t *Table) ColumnNames() []string {
	o := make([]string, len(t.names))
	copy(o, t.names)
	return o
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Column returns the raw text cells of the named column.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("nzip: table has no column %q", name)
	}
	return t.cells[i], nil
}

// Floats returns the named column as numbers. Blank and non-numeric
// cells become NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	o := make([]float64, len(col))
	for j, c := range col {
		o[j] = cellValue(c)
	}
	return o, nil
}

// cellValue converts one cell to a number, stripping the thousands
// separators that appear in some NZIP exports. Cells that still fail
// to parse become NaN.
func cellValue(c string) float64 {
	c = strings.TrimSpace(strings.Replace(c, ",", "", -1))
	if c == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
