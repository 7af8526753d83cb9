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

// Package stocktake summarizes and maps UK point-source CO2 emissions
// from the National Atmospheric Emissions Inventory (NAEI).
package stocktake

import (
	"fmt"
	"io"
	"sort"

	"github.com/spatialmodel/nzip"
)

// Molar masses [grams per mole].
const (
	mwCO2 = 44.0095
	mwC   = 12.0107
)

// CToCO2 converts a mass of carbon to the mass of CO2 it forms. The
// NAEI gridded point-source totals report carbon; this is the rounded
// mwCO2/mwC factor the inventory publishes.
const CToCO2 = 3.66

// A PointSource is one NAEI point-source record.
type PointSource struct {
	PlantID  string
	Site     string
	Operator string
	Sector   string
	Easting  float64 // British National Grid [m]
	Northing float64 // British National Grid [m]
	Carbon   float64 // reported emission [tonnes C/yr]
	CO2      float64 // derived emission [tonnes CO2/yr]
}

// Column names in the NAEI point-source download.
const (
	colPlantID  = "PlantID"
	colSite     = "Site"
	colOperator = "Operator"
	colSector   = "Sector"
	colEasting  = "Easting"
	colNorthing = "Northing"
	colEmission = "Emission"
)

// Load converts a table of NAEI point-source records, deriving each
// plant's CO2 from its reported carbon.
func Load(t *nzip.Table) ([]*PointSource, error) {
	var text [4][]string
	for i, name := range []string{colPlantID, colSite, colOperator, colSector} {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("stocktake: loading point sources: %v", err)
		}
		text[i] = col
	}
	var nums [3][]float64
	for i, name := range []string{colEasting, colNorthing, colEmission} {
		col, err := t.Floats(name)
		if err != nil {
			return nil, fmt.Errorf("stocktake: loading point sources: %v", err)
		}
		nums[i] = col
	}
	o := make([]*PointSource, t.Rows())
	for j := range o {
		o[j] = &PointSource{
			PlantID:  text[0][j],
			Site:     text[1][j],
			Operator: text[2][j],
			Sector:   text[3][j],
			Easting:  nums[0][j],
			Northing: nums[1][j],
			Carbon:   nums[2][j],
			CO2:      nums[2][j] * CToCO2,
		}
	}
	return o, nil
}

// TargetSectors are the sectors considered for near-term carbon
// capture in the stocktake.
var TargetSectors = []string{
	"Waste collection, treatment & disposal",
	"Major power producers",
	"Minor power producers",
	"Lime",
	"Cement",
	"Iron & steel industries",
}

// A SectorTotal is the stocktake result for one sector.
type SectorTotal struct {
	Sector string
	CO2    float64 // tonnes CO2/yr
	Plants int
}

// A Report is a stocktake over one set of point sources.
type Report struct {
	TotalCO2 float64 // tonnes CO2/yr over all plants
	Plants   int
	Sectors  []string // unique sectors, sorted

	// SectorTotals holds one entry per requested target sector, in
	// request order; a sector absent from the data appears with zero
	// plants rather than being dropped.
	SectorTotals []SectorTotal
	TargetTotal  float64 // tonnes CO2/yr over the target sectors
	TargetShare  float64 // TargetTotal as a fraction of TotalCO2

	TopEmitters []*PointSource // the topN largest plants by CO2
}

// Take builds a stocktake report: national and per-target-sector CO2
// totals plus the topN largest emitters.
func Take(sources []*PointSource, targetSectors []string, topN int) *Report {
	r := &Report{Plants: len(sources)}

	seen := make(map[string]bool)
	for _, s := range sources {
		r.TotalCO2 += s.CO2
		if !seen[s.Sector] {
			seen[s.Sector] = true
			r.Sectors = append(r.Sectors, s.Sector)
		}
	}
	sort.Strings(r.Sectors)

	for _, sector := range targetSectors {
		st := SectorTotal{Sector: sector}
		for _, s := range sources {
			if s.Sector != sector {
				continue
			}
			st.CO2 += s.CO2
			st.Plants++
		}
		r.TargetTotal += st.CO2
		r.SectorTotals = append(r.SectorTotals, st)
	}
	if r.TotalCO2 > 0 {
		r.TargetShare = r.TargetTotal / r.TotalCO2
	}

	sorted := make([]*PointSource, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CO2 > sorted[j].CO2 })
	if topN > len(sorted) {
		topN = len(sorted)
	}
	r.TopEmitters = sorted[:topN]
	return r
}

// Write renders the report as plain text, one fact per line.
func (r *Report) Write(w io.Writer) error {
	fmt.Fprintf(w, "Total CO2 emissions from point sources: %.2f tonnes\n", r.TotalCO2)
	fmt.Fprintf(w, "Number of plants: %d\n", r.Plants)
	fmt.Fprintf(w, "Unique sectors: %d\n", len(r.Sectors))

	fmt.Fprintf(w, "\nEmissions by target sectors:\n")
	for _, st := range r.SectorTotals {
		if st.Plants == 0 {
			fmt.Fprintf(w, "%s: No data found\n", st.Sector)
			continue
		}
		fmt.Fprintf(w, "%s: %.2f tonnes CO2 (%d plants)\n", st.Sector, st.CO2, st.Plants)
	}
	fmt.Fprintf(w, "\nTotal emissions from target sectors: %.2f tonnes CO2\n", r.TargetTotal)
	fmt.Fprintf(w, "Percentage of total emissions: %.1f%%\n", r.TargetShare*100)

	fmt.Fprintf(w, "\nTop %d largest CO2 emitters:\n", len(r.TopEmitters))
	for i, s := range r.TopEmitters {
		if _, err := fmt.Fprintf(w, "%2d. %-25s | %-35s | %-30s | %12.0f tonnes\n",
			i+1, s.Site, s.Operator, s.Sector, s.CO2); err != nil {
			return err
		}
	}
	return nil
}
