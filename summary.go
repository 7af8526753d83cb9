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

import "fmt"

// A Summary describes a table's columns with annual series collapsed
// to year ranges, plus overall column and row counts. Rendering the
// lines is the caller's concern.
type Summary struct {
	Lines   []string
	Columns int
	Rows    int
}

// Summarize formats the given series groups: one numbered line per
// annual series, spanning its smallest to largest year, and one line
// per remaining column showing the full original name. Ordinals are
// global across groups and increase by one per emitted line.
func Summarize(groups []SeriesGroup, rows int) Summary {
	s := Summary{Rows: rows}
	n := 1
	for _, g := range groups {
		s.Columns += len(g.Members)
		if g.Annual() {
			min, max := g.YearRange()
			if min == max {
				s.Lines = append(s.Lines, fmt.Sprintf("%d. %s %s", n, g.BaseName, min))
			} else {
				s.Lines = append(s.Lines, fmt.Sprintf("%d. %s %s-%s", n, g.BaseName, min, max))
			}
			n++
			continue
		}
		for _, m := range g.Members {
			s.Lines = append(s.Lines, fmt.Sprintf("%d. %s", n, m.Column))
			n++
		}
	}
	return s
}

// SummarizeTable classifies the table's columns and summarizes them in
// one step.
func SummarizeTable(t *Table) Summary {
	return Summarize(ClassifyColumns(t.ColumnNames()), t.Rows())
}
