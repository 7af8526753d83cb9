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

// Package scenario extracts energy-use and emissions time series from
// NZIP scenario results and renders them as charts.
package scenario

import (
	"image/color"

	"github.com/spatialmodel/nzip"
)

// FirstYear and LastYear bound the horizon of the NZIP model runs.
const (
	FirstYear = 2016
	LastYear  = 2070
)

// A Fuel describes one energy carrier tracked by the NZIP results,
// with the table labels of its baseline and total use series [GWh].
type Fuel struct {
	Name     string
	Baseline string
	Total    string

	// BaselineColor and TotalColor are the colors the fuel's two
	// curves are drawn with: a strong shade for the baseline and a
	// lighter one for the total.
	BaselineColor, TotalColor color.Color
}

// Fuels lists the energy carriers present in the NZIP results. The
// doubled space in the bioenergy total label matches the dataset
// header exactly.
var Fuels = []Fuel{
	{
		Name:          "Natural Gas",
		Baseline:      "Baseline in natural gas use (GWh)",
		Total:         "Total natural gas use (GWh)",
		BaselineColor: color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
		TotalColor:    color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 255},
	},
	{
		Name:          "Petroleum",
		Baseline:      "Baseline in petroleum use (GWh)",
		Total:         "Total petroleum use (GWh)",
		BaselineColor: color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255},
		TotalColor:    color.NRGBA{R: 0xff, G: 0x7f, B: 0x7f, A: 255},
	},
	{
		Name:          "Hydrogen",
		Baseline:      "Baseline in hydrogen use (GWh)",
		Total:         "Total hydrogen use (GWh)",
		BaselineColor: color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: 255},
		TotalColor:    color.NRGBA{R: 0xc5, G: 0xb0, B: 0xd5, A: 255},
	},
	{
		Name:          "Bioenergy",
		Baseline:      "Baseline in primary bioenergy use (GWh)",
		Total:         "Total  primary bioenergy use (GWh)",
		BaselineColor: color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
		TotalColor:    color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 255},
	},
	{
		Name:          "Electricity",
		Baseline:      "Baseline electricity use (GWh)",
		Total:         "Total electricity use (GWh)",
		BaselineColor: color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
		TotalColor:    color.NRGBA{R: 0xff, G: 0xb3, B: 0x47, A: 255},
	},
}

// A Series is one year-indexed total: one value per year, summed
// across all sites.
type Series struct {
	Years  []int
	Values []float64
}

// A FuelUse holds one fuel's baseline and total use series over a
// year range.
type FuelUse struct {
	Fuel            Fuel
	Baseline, Total Series
}

// Extract pulls each fuel's baseline and total use series from the
// table for years within [begin, end], summed across all sites. A fuel
// with no columns in the range comes back with empty series rather
// than an error.
func Extract(t *nzip.Table, begin, end int) ([]FuelUse, error) {
	o := make([]FuelUse, 0, len(Fuels))
	for _, f := range Fuels {
		baseline, err := ExtractSeries(t, f.Baseline, begin, end)
		if err != nil {
			return nil, err
		}
		total, err := ExtractSeries(t, f.Total, begin, end)
		if err != nil {
			return nil, err
		}
		o = append(o, FuelUse{Fuel: f, Baseline: baseline, Total: total})
	}
	return o, nil
}

// ExtractSeries selects the columns labeled with substr for years in
// [begin, end] and reduces each to its sum over all sites.
func ExtractSeries(t *nzip.Table, substr string, begin, end int) (Series, error) {
	cols, err := t.SelectSeries(substr, begin, end)
	if err != nil {
		return Series{}, err
	}
	vals, err := t.AggregateByYear(cols, nzip.SkipMissing)
	if err != nil {
		return Series{}, err
	}
	return Series{Years: nzip.Years(cols), Values: vals}, nil
}
