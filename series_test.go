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
	"reflect"
	"sort"
	"testing"
)

func TestClassifyColumns(t *testing.T) {
	columns := []string{
		"Site",
		"Gas use (GWh) 2020",
		"Gas use (GWh) 2021",
		"Sector",
		"Gas use (GWh) 2022",
		"Capex (£m) 2020",
	}
	groups := ClassifyColumns(columns)
	want := []SeriesGroup{
		{BaseName: "Site", Members: []SeriesMember{{Year: "", Column: "Site"}}},
		{BaseName: "Gas use (GWh)", Members: []SeriesMember{
			{Year: "2020", Column: "Gas use (GWh) 2020"},
			{Year: "2021", Column: "Gas use (GWh) 2021"},
			{Year: "2022", Column: "Gas use (GWh) 2022"},
		}},
		{BaseName: "Sector", Members: []SeriesMember{{Year: "", Column: "Sector"}}},
		{BaseName: "Capex (£m)", Members: []SeriesMember{{Year: "2020", Column: "Capex (£m) 2020"}}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("have %+v, want %+v", groups, want)
	}
}

// TestClassifyColumnsPartition checks that classification neither
// drops nor duplicates columns.
func TestClassifyColumnsPartition(t *testing.T) {
	columns := []string{
		"PlantID", "Operator", "Emission",
		"Baseline emissions (MtCO2e) 2016",
		"Baseline emissions (MtCO2e) 2017",
		"Notes 123", // malformed year; still classified, just not annual
		"Total CO2 stored (MtCO2) 2050",
	}
	var got []string
	for _, g := range ClassifyColumns(columns) {
		for _, m := range g.Members {
			got = append(got, m.Column)
		}
	}
	sortedWant := append([]string{}, columns...)
	sort.Strings(sortedWant)
	sort.Strings(got)
	if !reflect.DeepEqual(got, sortedWant) {
		t.Errorf("classification lost or duplicated columns: have %v, want %v", got, sortedWant)
	}
}

func TestAnnual(t *testing.T) {
	tests := []struct {
		columns []string
		annual  bool
	}{
		{[]string{"Gas 2020", "Gas 2021"}, true},
		{[]string{"Gas 2020"}, false},
		{[]string{"Gas", "Gas 2020"}, false},
		{[]string{"Site"}, false},
	}
	for _, test := range tests {
		groups := ClassifyColumns(test.columns)
		if len(groups) != 1 {
			t.Fatalf("%v: have %d groups, want 1", test.columns, len(groups))
		}
		if annual := groups[0].Annual(); annual != test.annual {
			t.Errorf("%v: Annual() = %v, want %v", test.columns, annual, test.annual)
		}
	}
}

func TestSummarize(t *testing.T) {
	columns := []string{
		"Site",
		"Gas 2016", "Gas 2070",
		"Oil 2016",
		"Capex 2020", "Capex 2020 notes",
	}
	s := Summarize(ClassifyColumns(columns), 3)
	wantLines := []string{
		"1. Site",
		"2. Gas 2016-2070",
		"3. Oil 2016",
		"4. Capex 2020",
		"5. Capex 2020 notes",
	}
	if !reflect.DeepEqual(s.Lines, wantLines) {
		t.Errorf("lines: have %v, want %v", s.Lines, wantLines)
	}
	if s.Columns != len(columns) {
		t.Errorf("columns: have %d, want %d", s.Columns, len(columns))
	}
	if s.Rows != 3 {
		t.Errorf("rows: have %d, want 3", s.Rows)
	}
}

// TestSummarizeSingleYearRange checks that a range collapsing to one
// year is shown as that year, not as a range.
func TestSummarizeSingleYearRange(t *testing.T) {
	// Two columns with the same base name and year cannot occur in a
	// well-formed table, so build the group directly.
	g := []SeriesGroup{{
		BaseName: "Gas",
		Members: []SeriesMember{
			{Year: "2016", Column: "Gas 2016"},
			{Year: "2016", Column: "Gas 2016"},
		},
	}}
	s := Summarize(g, 0)
	want := []string{"1. Gas 2016"}
	if !reflect.DeepEqual(s.Lines, want) {
		t.Errorf("have %v, want %v", s.Lines, want)
	}
}

// TestSummarizeOrdinals checks that ordinals increase by exactly one
// per line regardless of which branch emits the line.
func TestSummarizeOrdinals(t *testing.T) {
	columns := []string{
		"A 2016", "A 2017",
		"B",
		"C 2020",
		"D 2016", "D 2017", "D 2018",
		"E", "F",
	}
	s := Summarize(ClassifyColumns(columns), 0)
	for i, line := range s.Lines {
		var n int
		if _, err := fmt.Sscanf(line, "%d.", &n); err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		if n != i+1 {
			t.Errorf("line %d has ordinal %d", i+1, n)
		}
	}
	if last := len(s.Lines); last != 6 {
		t.Errorf("have %d lines, want 6", last)
	}
}

func TestSelectSeries(t *testing.T) {
	tbl, err := NewTable([]string{
		"Site",
		"Total natural gas use (GWh) 2021",
		"Total natural gas use (GWh) 2016",
		"Baseline in natural gas use (GWh) 2016",
		"Total natural gas use (GWh) 2071",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	cols, err := tbl.SelectSeries("Total natural gas use (GWh)", 2016, 2070)
	if err != nil {
		t.Fatal(err)
	}
	want := []YearColumn{
		{Year: 2016, Column: "Total natural gas use (GWh) 2016"},
		{Year: 2021, Column: "Total natural gas use (GWh) 2021"},
	}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("have %v, want %v", cols, want)
	}

	empty, err := tbl.SelectSeries("Total hydrogen use (GWh)", 2016, 2070)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("unmatched substring: have %v, want empty", empty)
	}
}

func TestSelectSeriesMalformedYear(t *testing.T) {
	tbl, err := NewTable([]string{"Gas use scenario 3"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tbl.SelectSeries("Gas use", 2016, 2070)
	yerr, ok := err.(*YearError)
	if !ok {
		t.Fatalf("have error %v, want *YearError", err)
	}
	if yerr.Column != "Gas use scenario 3" || yerr.Token != "3" {
		t.Errorf("unexpected error contents: %+v", yerr)
	}

	// A token ending in four digits without the separating space is
	// malformed too, not part of the name.
	tbl, err = NewTable([]string{"Gas use (GWh) x2016"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tbl.SelectSeries("Gas use", 2016, 2070)
	yerr, ok = err.(*YearError)
	if !ok {
		t.Fatalf("have error %v, want *YearError", err)
	}
	if yerr.Token != "x2016" {
		t.Errorf("unexpected error contents: %+v", yerr)
	}
}

func TestAggregateByYear(t *testing.T) {
	tbl, err := NewTable(
		[]string{"Gas 2016", "Gas 2017"},
		[][]string{{"10", "20"}, {"5", "15"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	cols, err := tbl.SelectSeries("Gas", 2016, 2017)
	if err != nil {
		t.Fatal(err)
	}
	totals, err := tbl.AggregateByYear(cols, SkipMissing)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{15, 35}
	if !reflect.DeepEqual(totals, want) {
		t.Errorf("have %v, want %v", totals, want)
	}

	// Aggregation is a pure function of the unmodified table.
	again, err := tbl.AggregateByYear(cols, SkipMissing)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(totals, again) {
		t.Errorf("repeated aggregation differs: %v then %v", totals, again)
	}
}

func TestAggregateMissing(t *testing.T) {
	tbl, err := NewTable(
		[]string{"Gas 2016"},
		[][]string{{"10"}, {""}, {"not a number"}, {"5"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	cols := []YearColumn{{Year: 2016, Column: "Gas 2016"}}

	skipped, err := tbl.AggregateByYear(cols, SkipMissing)
	if err != nil {
		t.Fatal(err)
	}
	if skipped[0] != 15 {
		t.Errorf("SkipMissing: have %v, want 15", skipped[0])
	}

	propagated, err := tbl.AggregateByYear(cols, PropagateMissing)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(propagated[0]) {
		t.Errorf("PropagateMissing: have %v, want NaN", propagated[0])
	}
}

// TestEndToEnd is the full selection-plus-aggregation scenario over a
// small site table.
func TestEndToEnd(t *testing.T) {
	tbl, err := NewTable(
		[]string{
			"Baseline in natural gas use (GWh) 2016",
			"Baseline in natural gas use (GWh) 2017",
		},
		[][]string{{"10", "20"}, {"5", "15"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	cols, err := tbl.SelectSeries("Baseline in natural gas use (GWh)", 2016, 2017)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Years(cols), []int{2016, 2017}) {
		t.Errorf("years: have %v, want [2016 2017]", Years(cols))
	}
	totals, err := tbl.AggregateByYear(cols, SkipMissing)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(totals, []float64{15, 35}) {
		t.Errorf("totals: have %v, want [15 35]", totals)
	}
}
