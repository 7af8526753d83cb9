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
	"math"

	"gonum.org/v1/gonum/floats"
)

// StorageFirstYear and StorageLastYear bound the CO2 storage scenario.
const (
	StorageFirstYear = 2025
	StorageLastYear  = 2060
)

// ConsumptionStart and ConsumptionEnd are the endpoints of the linear
// UK oil and gas consumption projections [Mt CO2/yr]: 140 in 2025
// falling to 70 by 2055 and continuing on the same slope to 58.33 by
// 2060.
const (
	ConsumptionStart = 140.0
	ConsumptionEnd   = 58.33
)

// plateauIndex is the last year index the stored fraction still grows
// in (2055 within the storage horizon).
const plateauIndex = 33

// StorageYears returns the storage scenario's year axis.
func StorageYears() []int {
	years := make([]int, StorageLastYear-StorageFirstYear+1)
	for i := range years {
		years[i] = StorageFirstYear + i
	}
	return years
}

// LinearConsumption returns the projected consumption series of one
// fossil carrier over the storage horizon.
func LinearConsumption() Series {
	years := StorageYears()
	vals := make([]float64, len(years))
	floats.Span(vals, ConsumptionStart, ConsumptionEnd)
	return Series{Years: years, Values: vals}
}

// StoredFraction returns the assumed fraction of produced CO2 that is
// stored in each year of the storage horizon: 0.1% in the first year,
// then growing by an increment that itself grows by 0.2 percentage
// points per year, frozen from 2055 on. Values are rounded to three
// decimals.
func StoredFraction() Series {
	years := StorageYears()
	vals := make([]float64, len(years))
	vals[0] = 0.001
	increment := 0.003
	for i := 1; i < len(vals); i++ {
		if i > plateauIndex {
			vals[i] = vals[i-1]
			continue
		}
		vals[i] = math.Round((vals[i-1]+increment)*1000) / 1000
		increment += 0.002
	}
	return Series{Years: years, Values: vals}
}
