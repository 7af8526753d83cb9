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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func seriesXYs(s Series) plotter.XYs {
	xys := make(plotter.XYs, len(s.Values))
	for i := range s.Values {
		xys[i].X = float64(s.Years[i])
		xys[i].Y = s.Values[i]
	}
	return xys
}

// addSeries draws one series as a line with point markers, solid when
// dashed is false, and registers it in the plot legend.
func addSeries(p *plot.Plot, s Series, name string, c color.Color, dashed bool) error {
	if len(s.Values) == 0 {
		return nil
	}
	l, sc, err := plotter.NewLinePoints(seriesXYs(s))
	if err != nil {
		return fmt.Errorf("scenario: plotting %s: %v", name, err)
	}
	l.Color = c
	l.Width = vg.Points(2)
	if dashed {
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(1.5)
	if dashed {
		sc.GlyphStyle.Shape = draw.BoxGlyph{}
	}
	p.Add(l, sc)
	p.Legend.Add(name, l)
	return nil
}

// PlotFuelUse draws every fuel's baseline (solid) and total (dashed)
// use on one chart and saves it as a PNG.
func PlotFuelUse(uses []FuelUse, filename string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Energy Use: Baseline vs Total Over Time (All Fuel Types)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Energy Use (GWh)"
	p.Add(plotter.NewGrid())
	for _, u := range uses {
		if err := addSeries(p, u.Baseline, "Baseline "+u.Fuel.Name, u.Fuel.BaselineColor, false); err != nil {
			return err
		}
		if err := addSeries(p, u.Total, "Total "+u.Fuel.Name, u.Fuel.TotalColor, true); err != nil {
			return err
		}
	}
	p.Legend.Top = true
	if err := p.Save(16*vg.Inch, 10*vg.Inch, filename); err != nil {
		return fmt.Errorf("scenario: saving fuel use chart: %v", err)
	}
	return nil
}

// PlotEmissions draws the emissions accounting series together with
// the factor-derived combustion CO2 series and saves the chart as a
// PNG.
func PlotEmissions(r *EmissionsReport, filename string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "CO2 Emissions: Energy Carriers vs Dataset Emissions"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "CO2 Emissions (MtCO2)"
	p.Add(plotter.NewGrid())

	gas, oil := Fuels[0], Fuels[1]
	greys := []color.Color{
		color.NRGBA{R: 0x2f, G: 0x2f, B: 0x2f, A: 255},
		color.NRGBA{R: 0x5f, G: 0x5f, B: 0x5f, A: 255},
		color.NRGBA{R: 0x8f, G: 0x8f, B: 0x8f, A: 255},
		color.NRGBA{R: 0xbf, G: 0xbf, B: 0xbf, A: 255},
	}
	for _, x := range []struct {
		s      Series
		name   string
		color  color.Color
		dashed bool
	}{
		{r.GasBaseline, "Baseline Natural Gas CO2", gas.BaselineColor, false},
		{r.GasTotal, "Total Natural Gas CO2", gas.TotalColor, true},
		{r.OilBaseline, "Baseline Petroleum CO2", oil.BaselineColor, false},
		{r.OilTotal, "Total Petroleum CO2", oil.TotalColor, true},
		{r.Baseline, "Baseline Emissions", greys[0], false},
		{r.PostREEE, "Post REEE Baseline Emissions", greys[1], true},
		{r.DirectAbated, "Total Direct Emissions Abated", greys[2], true},
		{r.IndirectAbated, "Total Indirect Emissions Abated", greys[3], true},
		{r.Stored, "Total CO2 Stored", color.Black, false},
	} {
		if err := addSeries(p, x.s, x.name, x.color, x.dashed); err != nil {
			return err
		}
	}
	p.Legend.Top = true
	if err := p.Save(16*vg.Inch, 10*vg.Inch, filename); err != nil {
		return fmt.Errorf("scenario: saving emissions chart: %v", err)
	}
	return nil
}

// stackBand builds the filled band between two stacked series sharing
// one year axis: lower may be nil for a band rising from zero.
func stackBand(lower, upper Series, c color.Color) (*plotter.Polygon, error) {
	n := len(upper.Values)
	xys := make(plotter.XYs, 2*n)
	for i := range upper.Values {
		xys[i].X = float64(upper.Years[i])
		xys[i].Y = upper.Values[i]
	}
	for i := n - 1; i >= 0; i-- {
		j := 2*n - 1 - i
		xys[j].X = float64(upper.Years[i])
		if lower.Values != nil {
			xys[j].Y = lower.Values[i]
		}
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Color = color.Transparent
	return poly, nil
}

// PlotStorage draws the stacked oil and gas consumption projections
// with the stored-CO2 series overlaid from zero, plus the
// stored-fraction schedule scaled onto the same axis (a fraction of
// 1.0 drawing at the height of ConsumptionStart), and saves the chart
// as a PNG.
func PlotStorage(oil, gas, stored, fraction Series, filename string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Y.Label.Text = "CO2 (MtCO2)"
	p.X.Min = StorageFirstYear
	p.X.Max = StorageLastYear

	// Stack gas on top of oil.
	oilGas := Series{Years: oil.Years, Values: make([]float64, len(oil.Values))}
	for i := range oil.Values {
		oilGas.Values[i] = oil.Values[i] + gas.Values[i]
	}
	oilBand, err := stackBand(Series{}, oil, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x99})
	if err != nil {
		return err
	}
	gasBand, err := stackBand(oil, oilGas, color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0x99})
	if err != nil {
		return err
	}
	storedBand, err := stackBand(Series{}, stored, color.NRGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0x99})
	if err != nil {
		return err
	}
	p.Add(oilBand, gasBand, storedBand)
	p.Legend.Add("Oil Consumption", oilBand)
	p.Legend.Add("Gas Consumption", gasBand)
	p.Legend.Add("Stored CO2 from NZIP industries", storedBand)

	scaled := Series{Years: fraction.Years, Values: make([]float64, len(fraction.Values))}
	for i, v := range fraction.Values {
		scaled.Values[i] = v * ConsumptionStart
	}
	fl, err := plotter.NewLine(seriesXYs(scaled))
	if err != nil {
		return err
	}
	fl.Color = color.Black
	fl.Width = vg.Points(2)
	p.Add(fl)
	p.Legend.Add("Stored Fraction", fl)
	p.Legend.Top = true

	if err := p.Save(12*vg.Inch, 8*vg.Inch, filename); err != nil {
		return fmt.Errorf("scenario: saving storage chart: %v", err)
	}
	return nil
}
