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

package nziputil

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spatialmodel/nzip"
)

const testPointSourceCSV = `PlantID,Site,Operator,Sector,Easting,Northing,Emission
1,Teesside Works,Alpha Ltd,Cement - minerals,451000,525000,100000
2,Humber Refinery,Beta plc,Refineries,510000,415000,250000
`

// writeResults writes a small scenario results table whose second row
// holds the year-labeled column names, the way the NZIP export does.
func writeResults(t *testing.T, dir string) string {
	rows := [][]string{
		{"Teesside", "10", "20", "8", "15"},
		{"Humber", "5", "10", "4", "8"},
	}
	names := []string{
		"Site",
		"Baseline in natural gas use 2016", "Baseline in natural gas use 2017",
		"Total natural gas use 2016", "Total natural gas use 2017",
	}
	var b bytes.Buffer
	b.WriteString(strings.Join(names, ",") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ",") + "\n")
	}
	fname := filepath.Join(dir, "results.csv")
	if err := ioutil.WriteFile(fname, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func execute(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, nzip.Version) {
		t.Errorf("version output %q missing %q", out, nzip.Version)
	}
}

func TestSummary(t *testing.T) {
	dir, err := ioutil.TempDir("", "nziputil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	Cfg.Set("ResultsFile", writeResults(t, dir))
	out := execute(t, "summary")
	if !strings.Contains(out, "Total number of columns: 5") {
		t.Errorf("summary output missing column count:\n%s", out)
	}
	if !strings.Contains(out, "Total number of rows: 2") {
		t.Errorf("summary output missing row count:\n%s", out)
	}
	if !strings.Contains(out, "2016-2017") {
		t.Errorf("summary output missing year range:\n%s", out)
	}
}

func TestEnergy(t *testing.T) {
	dir, err := ioutil.TempDir("", "nziputil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	Cfg.Set("ResultsFile", writeResults(t, dir))
	out := filepath.Join(dir, "energy.png")
	Cfg.Set("OutputFile", out)
	Cfg.Set("Expression", "total - baseline")
	defer Cfg.Set("Expression", "")
	text := execute(t, "energy")
	if _, err := os.Stat(out); err != nil {
		t.Errorf("energy chart not written: %v", err)
	}
	if !strings.Contains(text, "Natural Gas (total - baseline)") {
		t.Errorf("energy output missing derived table:\n%s", text)
	}
	if !strings.Contains(text, "2016: -3") {
		t.Errorf("energy output missing derived value:\n%s", text)
	}
}

func TestMACCSynthetic(t *testing.T) {
	dir, err := ioutil.TempDir("", "nziputil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "macc.png")
	Cfg.Set("OutputFile", out)
	text := execute(t, "macc")
	if _, err := os.Stat(out); err != nil {
		t.Errorf("cost curve not written: %v", err)
	}
	if !strings.Contains(text, "Total potential abatement:") {
		t.Errorf("macc output missing statistics:\n%s", text)
	}
}

func TestStocktake(t *testing.T) {
	dir, err := ioutil.TempDir("", "nziputil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	fname := filepath.Join(dir, "points.csv")
	if err := ioutil.WriteFile(fname, []byte(testPointSourceCSV), 0644); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("Stocktake.PointSourceFile", fname)
	out := execute(t, "stocktake")
	if !strings.Contains(out, "Number of plants: 2") {
		t.Errorf("stocktake output missing plant count:\n%s", out)
	}
	if !strings.Contains(out, "Refineries") {
		t.Errorf("stocktake output missing sector breakdown:\n%s", out)
	}
}

func TestSetConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "nziputil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	fname := filepath.Join(dir, "nzip.toml")
	if err := ioutil.WriteFile(fname, []byte("BeginYear = 2020\n"), 0644); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("config", fname)
	defer Cfg.Set("config", "")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	if y := Cfg.GetInt("BeginYear"); y != 2020 {
		t.Errorf("BeginYear: have %d, want 2020", y)
	}
}

func TestGetStringSlice(t *testing.T) {
	sectors, err := getStringSlice("Stocktake.Sectors", Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(sectors) == 0 {
		t.Fatal("no default sectors")
	}
	Cfg.Set("Stocktake.Sectors", `["Refineries","Cement - minerals"]`)
	defer Cfg.Set("Stocktake.Sectors", sectors)
	got, err := getStringSlice("Stocktake.Sectors", Cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Refineries", "Cement - minerals"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sectors: have %v, want %v", got, want)
	}
}
