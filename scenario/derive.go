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
	"fmt"

	"github.com/Knetic/govaluate"
)

// Derive evaluates an arithmetic expression over a set of named
// series, year by year, producing a new series. The names are the
// expression's variables (for example "total - baseline" over series
// named "total" and "baseline"), so they must be valid identifiers.
// All input series must share the same year axis.
func Derive(expr string, series map[string]Series) (Series, error) {
	if len(series) == 0 {
		return Series{}, fmt.Errorf("scenario: deriving %q: no input series", expr)
	}
	ev, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return Series{}, fmt.Errorf("scenario: parsing expression %q: %v", expr, err)
	}
	var years []int
	for _, s := range series {
		if len(s.Years) > 0 {
			years = s.Years
			break
		}
	}
	for name, s := range series {
		if !equalYears(years, s.Years) {
			return Series{}, fmt.Errorf("scenario: deriving %q: series %q has a different year axis",
				expr, name)
		}
	}
	vals := make([]float64, len(years))
	params := make(map[string]interface{}, len(series))
	for i := range years {
		for name, s := range series {
			params[name] = s.Values[i]
		}
		r, err := ev.Evaluate(params)
		if err != nil {
			return Series{}, fmt.Errorf("scenario: evaluating %q: %v", expr, err)
		}
		v, ok := r.(float64)
		if !ok {
			return Series{}, fmt.Errorf("scenario: expression %q result is not numeric", expr)
		}
		vals[i] = v
	}
	return Series{Years: years, Values: vals}, nil
}

func equalYears(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
