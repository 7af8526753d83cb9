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
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// yearSuffix matches a column name's trailing year: one space followed
// by exactly four digits at the end of the string.
var yearSuffix = regexp.MustCompile(` (\d{4})$`)

// A SeriesMember is one column within a series group. Year is the
// column's four-digit year kept as text, or "" for a column that
// carries no year suffix.
type SeriesMember struct {
	Year   string
	Column string
}

// A SeriesGroup holds the columns sharing one base name (the column
// name with any trailing year removed), in table order.
type SeriesGroup struct {
	BaseName string
	Members  []SeriesMember
}

// Annual reports whether the group is an annual series: more than one
// member, every member bearing a year. Whether the years are
// contiguous is not checked; a series with gaps still reads as one
// range.
func (g *SeriesGroup) Annual() bool {
	if len(g.Members) < 2 {
		return false
	}
	for _, m := range g.Members {
		if m.Year == "" {
			return false
		}
	}
	return true
}

// YearRange returns the smallest and largest member years, compared
// numerically. Members without years are ignored; both results are ""
// if no member has a year.
func (g *SeriesGroup) YearRange() (min, max string) {
	for _, m := range g.Members {
		if m.Year == "" {
			continue
		}
		if min == "" || yearLess(m.Year, min) {
			min = m.Year
		}
		if max == "" || yearLess(max, m.Year) {
			max = m.Year
		}
	}
	return min, max
}

func yearLess(a, b string) bool {
	ai, _ := strconv.Atoi(a)
	bi, _ := strconv.Atoi(b)
	return ai < bi
}

// ClassifyColumns groups column names into series by stripping any
// trailing year. A column that does not end in a year forms a group of
// its own under its full name, with an empty year marker. Groups keep
// the order their base names are first seen in, and every input column
// lands in exactly one group.
func ClassifyColumns(columns []string) []SeriesGroup {
	var groups []SeriesGroup
	index := make(map[string]int)
	for _, col := range columns {
		base, year := col, ""
		if m := yearSuffix.FindStringSubmatch(col); m != nil {
			year = m[1]
			base = col[:len(col)-5] // strip the space and four digits
		}
		i, ok := index[base]
		if !ok {
			i = len(groups)
			index[base] = i
			groups = append(groups, SeriesGroup{BaseName: base})
		}
		groups[i].Members = append(groups[i].Members, SeriesMember{Year: year, Column: col})
	}
	return groups
}

// A YearError reports a column whose trailing token looks numeric but
// is not a valid four-digit year.
type YearError struct {
	Column string
	Token  string
}

func (e *YearError) Error() string {
	return fmt.Sprintf("nzip: column %q: cannot parse trailing token %q as a 4-digit year",
		e.Column, e.Token)
}

// columnYear extracts the trailing year from a column name. ok is
// false for columns with no year suffix. A trailing token that is all
// digits but not exactly four, or that ends in four or more digits
// without being a clean " dddd" suffix (as in "x2016"), returns a
// *YearError instead of being silently treated as part of the name.
func columnYear(col string) (year int, ok bool, err error) {
	if m := yearSuffix.FindStringSubmatch(col); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y, true, nil
	}
	fields := strings.Fields(col)
	if len(fields) > 1 {
		if last := fields[len(fields)-1]; isDigits(last) || trailingDigits(last) >= 4 {
			return 0, false, &YearError{Column: col, Token: last}
		}
	}
	return 0, false, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// trailingDigits counts the digits at the end of s.
func trailingDigits(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n++
	}
	return n
}

// A YearColumn pairs a column name with its parsed year.
type YearColumn struct {
	Year   int
	Column string
}

// Years returns the year of each given column, in order.
func Years(cols []YearColumn) []int {
	o := make([]int, len(cols))
	for i, c := range cols {
		o[i] = c.Year
	}
	return o
}

// SelectSeries returns the columns whose names contain substr and
// whose trailing year falls within [begin, end], sorted ascending by
// year. An empty result is not an error: a series can simply be absent
// from a year range. A matching column with a malformed trailing year
// returns a *YearError.
func (t *Table) SelectSeries(substr string, begin, end int) ([]YearColumn, error) {
	var o []YearColumn
	for _, col := range t.names {
		if !strings.Contains(col, substr) {
			continue
		}
		y, ok, err := columnYear(col)
		if err != nil {
			return nil, err
		}
		if !ok || y < begin || y > end {
			continue
		}
		o = append(o, YearColumn{Year: y, Column: col})
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Year < o[j].Year })
	return o, nil
}

// A MissingPolicy says how column sums treat blank or non-numeric
// cells.
type MissingPolicy int

const (
	// SkipMissing leaves missing cells out of the sum. This matches
	// how the spreadsheet tools the NZIP results are produced with
	// total a column, and is the default throughout this toolkit.
	SkipMissing MissingPolicy = iota

	// PropagateMissing makes any missing cell turn the whole column
	// total into NaN.
	PropagateMissing
)

// AggregateByYear reduces each selected column to its sum across all
// table rows, returning one total per column in input order. An empty
// selection yields an empty result.
func (t *Table) AggregateByYear(cols []YearColumn, policy MissingPolicy) ([]float64, error) {
	o := make([]float64, 0, len(cols))
	for _, yc := range cols {
		vals, err := t.Floats(yc.Column)
		if err != nil {
			return nil, err
		}
		o = append(o, sumColumn(vals, policy))
	}
	return o, nil
}

func sumColumn(vals []float64, policy MissingPolicy) float64 {
	var sum float64
	for _, v := range vals {
		if math.IsNaN(v) {
			if policy == PropagateMissing {
				return math.NaN()
			}
			continue
		}
		sum += v
	}
	return sum
}
