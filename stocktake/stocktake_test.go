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

package stocktake

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/spatialmodel/nzip"
)

func testSources(t *testing.T) []*PointSource {
	tbl, err := nzip.NewTable(
		[]string{"PlantID", "Site", "Operator", "Sector", "Easting", "Northing", "Emission"},
		[][]string{
			{"1", "Drax", "Drax Power Ltd", "Major power producers", "466000", "426000", "1000"},
			{"2", "Port Talbot", "Tata Steel", "Iron & steel industries", "276000", "188000", "800"},
			{"3", "Ketton", "Hanson", "Cement", "498000", "305000", "200"},
			{"4", "Small CHP", "Acme", "Minor power producers", "", "", "50"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	sources, err := Load(tbl)
	if err != nil {
		t.Fatal(err)
	}
	return sources
}

func TestLoad(t *testing.T) {
	sources := testSources(t)
	if len(sources) != 4 {
		t.Fatalf("have %d sources, want 4", len(sources))
	}
	drax := sources[0]
	if drax.CO2 != 1000*CToCO2 {
		t.Errorf("Drax CO2: have %v, want %v", drax.CO2, 1000*CToCO2)
	}
	if !math.IsNaN(sources[3].Easting) {
		t.Errorf("missing easting: have %v, want NaN", sources[3].Easting)
	}
}

func TestTake(t *testing.T) {
	sources := testSources(t)
	r := Take(sources, []string{"Major power producers", "Cement", "Lime"}, 2)

	wantTotal := (1000 + 800 + 200 + 50) * CToCO2
	if math.Abs(r.TotalCO2-wantTotal) > 1e-9 {
		t.Errorf("total: have %v, want %v", r.TotalCO2, wantTotal)
	}
	if r.Plants != 4 {
		t.Errorf("plants: have %d, want 4", r.Plants)
	}
	wantSectors := []string{
		"Cement", "Iron & steel industries", "Major power producers", "Minor power producers",
	}
	if !reflect.DeepEqual(r.Sectors, wantSectors) {
		t.Errorf("sectors: have %v, want %v", r.Sectors, wantSectors)
	}

	if len(r.SectorTotals) != 3 {
		t.Fatalf("sector totals: have %d entries, want 3", len(r.SectorTotals))
	}
	if st := r.SectorTotals[0]; st.Plants != 1 || st.CO2 != 1000*CToCO2 {
		t.Errorf("power producers: have %+v", st)
	}
	// A requested sector absent from the data keeps its zero-count
	// entry instead of being dropped.
	if st := r.SectorTotals[2]; st.Sector != "Lime" || st.Plants != 0 || st.CO2 != 0 {
		t.Errorf("lime: have %+v", st)
	}
	wantShare := (1000 + 200) * CToCO2 / wantTotal
	if math.Abs(r.TargetShare-wantShare) > 1e-12 {
		t.Errorf("target share: have %v, want %v", r.TargetShare, wantShare)
	}

	if len(r.TopEmitters) != 2 {
		t.Fatalf("top emitters: have %d, want 2", len(r.TopEmitters))
	}
	if r.TopEmitters[0].Site != "Drax" || r.TopEmitters[1].Site != "Port Talbot" {
		t.Errorf("top emitters: have %s, %s", r.TopEmitters[0].Site, r.TopEmitters[1].Site)
	}
}

func TestReportWrite(t *testing.T) {
	r := Take(testSources(t), TargetSectors, 3)
	var b bytes.Buffer
	if err := r.Write(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"Number of plants: 4",
		"Waste collection, treatment & disposal: No data found",
		"1. Drax",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
