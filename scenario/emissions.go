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

package scenario

import (
	"github.com/ctessum/unit"
	"github.com/spatialmodel/nzip"
)

// Combustion emission factors [kg CO2 per kWh].
const (
	GasEmissionFactor = 0.204
	OilEmissionFactor = 0.294
)

// Energy and mass measures used when converting fuel use to CO2.
var (
	kilowattHour = unit.New(3.6e6, unit.Joule)
	gigawattHour = unit.Mul(unit.New(1e6, unit.Dimless), kilowattHour)
	megatonne    = unit.New(1e9, unit.Kilogram)
)

// CombustionCO2 converts a fuel-use series [GWh] to the CO2 emitted by
// burning that fuel [Mt CO2], using an emission factor in kg CO2 per
// kWh.
func CombustionCO2(use Series, factor float64) Series {
	// kg CO2 per J of fuel burned.
	f := unit.Div(unit.New(factor, unit.Kilogram), kilowattHour)
	vals := make([]float64, len(use.Values))
	for i, u := range use.Values {
		energy := unit.Mul(unit.New(u, unit.Dimless), gigawattHour)
		vals[i] = unit.Div(unit.Mul(energy, f), megatonne).Value()
	}
	years := make([]int, len(use.Years))
	copy(years, use.Years)
	return Series{Years: years, Values: vals}
}

// Labels of the emissions accounting series in the NZIP results.
const (
	BaselineEmissionsLabel = "Baseline emissions (MtCO2e)"
	PostREEEEmissionsLabel = "Post REEE baseline emissions (MtCO2e)"
	DirectAbatedLabel      = "Total direct emissions abated (MtCO2e)"
	IndirectAbatedLabel    = "Total indirect emissions abated (MtCO2e)"
	StoredCO2Label         = "Total Tonnes of CO2 stored (MtCO2)"
)

// An EmissionsReport holds the CO2 series drawn on the emissions
// chart: the accounting series reported directly by the NZIP model
// [Mt CO2e] and the combustion CO2 derived from gas and petroleum use
// via emission factors [Mt CO2].
type EmissionsReport struct {
	Baseline, PostREEE, DirectAbated, IndirectAbated, Stored Series

	GasBaseline, GasTotal Series
	OilBaseline, OilTotal Series
}

// Emissions extracts the emissions accounting series from the table
// for years in [begin, end] and derives combustion CO2 for the two
// fossil carriers with emission factors.
func Emissions(t *nzip.Table, begin, end int) (*EmissionsReport, error) {
	r := new(EmissionsReport)
	for _, x := range []struct {
		label string
		dst   *Series
	}{
		{BaselineEmissionsLabel, &r.Baseline},
		{PostREEEEmissionsLabel, &r.PostREEE},
		{DirectAbatedLabel, &r.DirectAbated},
		{IndirectAbatedLabel, &r.IndirectAbated},
		{StoredCO2Label, &r.Stored},
	} {
		s, err := ExtractSeries(t, x.label, begin, end)
		if err != nil {
			return nil, err
		}
		*x.dst = s
	}

	gas, oil := Fuels[0], Fuels[1]
	for _, x := range []struct {
		label  string
		factor float64
		dst    *Series
	}{
		{gas.Baseline, GasEmissionFactor, &r.GasBaseline},
		{gas.Total, GasEmissionFactor, &r.GasTotal},
		{oil.Baseline, OilEmissionFactor, &r.OilBaseline},
		{oil.Total, OilEmissionFactor, &r.OilTotal},
	} {
		use, err := ExtractSeries(t, x.label, begin, end)
		if err != nil {
			return nil, err
		}
		*x.dst = CombustionCO2(use, x.factor)
	}
	return r, nil
}
