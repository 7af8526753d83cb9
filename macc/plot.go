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

package macc

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultThreshold is the ETS carbon price the curve is split at
// [£/t CO2].
const DefaultThreshold = 70.0

var (
	incentiveColor  = color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 255}
	differenceColor = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 255}
)

// bar builds one filled, black-edged rectangle.
func bar(x0, x1, y0, y1 float64, c color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(0.5)
	return poly, nil
}

// Plot draws the curve as variable-width cost bars over cumulative
// abatement, splitting each bar at the price threshold into the part
// an ETS price would pay for and the remaining cost difference, and
// saves the chart as a PNG.
func (c *Curve) Plot(threshold float64, filename string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Marginal Abatement Cost Curve for CCS Options"
	p.X.Label.Text = "Cumulative Abatement (MtCO2/yr)"
	p.Y.Label.Text = "Cost (£/tCO2)"
	p.Add(plotter.NewGrid())

	var incentive, difference *plotter.Polygon
	for i, o := range c.Options {
		x1 := c.Cumulative[i]
		x0 := x1 - o.Volume
		green, err := bar(x0, x1, 0, math.Min(o.Cost, threshold), incentiveColor)
		if err != nil {
			return err
		}
		p.Add(green)
		incentive = green
		if o.Cost > threshold {
			grey, err := bar(x0, x1, threshold, o.Cost, differenceColor)
			if err != nil {
				return err
			}
			p.Add(grey)
			difference = grey
		}
	}

	var total float64
	if n := len(c.Cumulative); n > 0 {
		total = c.Cumulative[n-1]
	}
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: threshold}, {X: total, Y: threshold}})
	if err != nil {
		return err
	}
	line.Color = color.Black
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line)

	if incentive != nil {
		p.Legend.Add("ETS price incentive", incentive)
	}
	if difference != nil {
		p.Legend.Add("CCS cost difference", difference)
	}
	p.Legend.Add(fmt.Sprintf("%.0f £/tCO2 ETS price", threshold), line)
	p.Legend.Top = true

	if err := p.Save(12*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("macc: saving chart: %v", err)
	}
	return nil
}
