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

// Package macc builds marginal abatement cost curves for carbon
// capture and storage options.
package macc

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/spatialmodel/nzip"
	"gonum.org/v1/gonum/floats"
)

// An Option is one abatement measure: an annualized cost [£/t CO2]
// and an abatement volume [Mt CO2/yr].
type Option struct {
	Cost   float64
	Volume float64
}

// A Curve is a marginal abatement cost curve: options sorted by
// ascending cost, with the cumulative abatement reached at the end of
// each option's bar.
type Curve struct {
	Options    []Option
	Cumulative []float64
}

// New builds a curve from a set of options, sorting them by cost. The
// input slice is not modified.
func New(options []Option) *Curve {
	opts := make([]Option, len(options))
	copy(opts, options)
	sort.Slice(opts, func(i, j int) bool { return opts[i].Cost < opts[j].Cost })
	vols := make([]float64, len(opts))
	for i, o := range opts {
		vols[i] = o.Volume
	}
	cum := make([]float64, len(opts))
	floats.CumSum(cum, vols)
	return &Curve{Options: opts, Cumulative: cum}
}

// SyntheticCCS generates the 30-option CCS curve used in the published
// figure: costs spread linearly from 50 to 300 £/t CO2 and volumes
// from 6 down to 0.6 Mt CO2/yr, with seeded Gaussian noise so repeated
// runs produce the same curve.
func SyntheticCCS() *Curve {
	const n = 30
	costs := make([]float64, n)
	vols := make([]float64, n)
	floats.Span(costs, 50, 300)
	floats.Span(vols, 6, 0.6)
	rnd := rand.New(rand.NewSource(42))
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = Option{
			Cost:   costs[i] + rnd.NormFloat64()*5,
			Volume: vols[i] + rnd.NormFloat64()*0.1,
		}
	}
	return New(opts)
}

// FromTable reads options from a table with "Cost" and "Volume"
// columns; rows with a missing cost or volume are dropped.
func FromTable(t *nzip.Table) (*Curve, error) {
	costs, err := t.Floats("Cost")
	if err != nil {
		return nil, fmt.Errorf("macc: reading options: %v", err)
	}
	vols, err := t.Floats("Volume")
	if err != nil {
		return nil, fmt.Errorf("macc: reading options: %v", err)
	}
	var opts []Option
	for i := range costs {
		if costs[i] != costs[i] || vols[i] != vols[i] { // NaN
			continue
		}
		opts = append(opts, Option{Cost: costs[i], Volume: vols[i]})
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("macc: no complete options in table")
	}
	return New(opts), nil
}

// Stats summarizes a curve relative to a carbon price threshold
// [£/t CO2].
type Stats struct {
	TotalAbatement float64 // Mt CO2/yr
	MeanCost       float64 // £/t CO2
	MinCost        float64 // £/t CO2
	MaxCost        float64 // £/t CO2
	BelowThreshold int     // options costing no more than the threshold
}

// Stats computes curve statistics against the given price threshold.
func (c *Curve) Stats(threshold float64) Stats {
	var s Stats
	costs := make([]float64, len(c.Options))
	for i, o := range c.Options {
		costs[i] = o.Cost
		s.TotalAbatement += o.Volume
		if o.Cost <= threshold {
			s.BelowThreshold++
		}
	}
	if len(costs) > 0 {
		s.MeanCost = stats.StatsMean(costs)
		s.MinCost = stats.StatsMin(costs)
		s.MaxCost = stats.StatsMax(costs)
	}
	return s
}
