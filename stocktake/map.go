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
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/carto"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
	"github.com/gonum/floats"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// British National Grid (EPSG:27700) in Proj4 format. NAEI point
// source coordinates are eastings and northings on this grid.
const osgb36 = "+proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 +x_0=400000 " +
	"+y_0=-100000 +ellps=airy " +
	"+towgs84=446.448,-125.157,542.06,0.15,0.247,0.842,-20.489 +units=m +no_defs"

// WGS84 geographic coordinates (EPSG:4326).
const wgs84 = "+proj=longlat +datum=WGS84 +no_defs"

// A MapConfig holds the inputs for drawing the point-source bubble
// map.
type MapConfig struct {
	// BackgroundShapefile is a polygon shapefile of land outlines
	// drawn behind the point sources. Its spatial reference is read
	// from the accompanying .prj file.
	BackgroundShapefile string

	// W, E, S, and N bound the drawn region in degrees. The zero
	// value draws a view centered on the United Kingdom.
	W, E, S, N float64

	// MaxRadius is the bubble radius of the largest emitter; bubble
	// area scales linearly with CO2. Defaults to 8 points.
	MaxRadius vg.Length

	// Width and Height give the image size. Defaults to 9.6 by 12
	// inches.
	Width, Height vg.Length
}

// ReadMapConfig reads a MapConfig from r, which should be in TOML
// format. Fields left out of the file keep their defaults.
func ReadMapConfig(r io.Reader) (*MapConfig, error) {
	cfg := new(MapConfig)
	if _, err := toml.DecodeReader(r, cfg); err != nil {
		return nil, fmt.Errorf("stocktake: decoding map configuration: %v", err)
	}
	return cfg, nil
}

func (cfg *MapConfig) setDefaults() {
	if cfg.W == 0 && cfg.E == 0 && cfg.S == 0 && cfg.N == 0 {
		cfg.W, cfg.E, cfg.S, cfg.N = -9, 3, 49, 62.5
	}
	if cfg.MaxRadius == 0 {
		cfg.MaxRadius = vg.Points(8)
	}
	if cfg.Width == 0 {
		cfg.Width = 9.6 * vg.Inch
	}
	if cfg.Height == 0 {
		cfg.Height = 12 * vg.Inch
	}
}

// background loads the land polygons and converts them to WGS84.
func background(filename string, to *proj.SR) ([]geom.Geom, error) {
	d, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, fmt.Errorf("stocktake: opening background shapefile: %v", err)
	}
	sr, err := d.SR()
	if err != nil {
		return nil, fmt.Errorf("stocktake: reading background projection: %v", err)
	}
	trans, err := sr.NewTransform(to)
	if err != nil {
		return nil, err
	}
	var o []geom.Geom
	for {
		g, _, more := d.DecodeRowFields()
		if !more {
			break
		}
		gg, err := g.Transform(trans)
		if err != nil {
			return nil, err
		}
		o = append(o, gg)
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("stocktake: reading background shapefile: %v", err)
	}
	return o, nil
}

// Map draws the point sources as bubbles sized and colored by CO2 over
// the background polygons and writes the result to a PNG file. Plants
// without grid coordinates are left off the map.
func Map(sources []*PointSource, cfg MapConfig, filename string) error {
	cfg.setDefaults()

	llSR, err := proj.Parse(wgs84)
	if err != nil {
		return err
	}
	bngSR, err := proj.Parse(osgb36)
	if err != nil {
		return err
	}
	ct, err := bngSR.NewTransform(llSR)
	if err != nil {
		return err
	}

	land, err := background(cfg.BackgroundShapefile, llSR)
	if err != nil {
		return err
	}

	var points []geom.Point
	var co2 []float64
	for _, s := range sources {
		if math.IsNaN(s.Easting) || math.IsNaN(s.Northing) {
			continue
		}
		g, err := geom.Point{X: s.Easting, Y: s.Northing}.Transform(ct)
		if err != nil {
			return fmt.Errorf("stocktake: reprojecting plant %s: %v", s.PlantID, err)
		}
		points = append(points, g.(geom.Point))
		co2 = append(co2, s.CO2)
	}
	if len(points) == 0 {
		return fmt.Errorf("stocktake: no plants with grid coordinates to map")
	}

	cmap := carto.NewColorMap(carto.Linear)
	cmap.AddArray(co2)
	cmap.Set()

	const legendHeight = 0.4 * vg.Inch
	ic := vgimg.New(cfg.Width, cfg.Height)
	dc := draw.New(ic)
	legendc := draw.Crop(dc, 0, 0, 0, legendHeight-cfg.Height)
	plotc := draw.Crop(dc, 0, 0, legendHeight, 0)
	if err := cmap.Legend(&legendc, "CO2 emissions (tonnes/yr)"); err != nil {
		return err
	}

	c := carto.NewCanvas(cfg.N, cfg.S, cfg.E, cfg.W, plotc)
	landFill := color.NRGBA{R: 211, G: 211, B: 211, A: 120}
	landEdge := draw.LineStyle{
		Color: color.White,
		Width: vg.Points(0.25),
	}
	for _, g := range land {
		if err := c.DrawVector(g, landFill, landEdge, draw.GlyphStyle{}); err != nil {
			return err
		}
	}

	maxCO2 := floats.Max(co2)
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	for i, pt := range points {
		col := cmap.GetColor(co2[i])
		// All-zero emissions would otherwise make the radius 0/0.
		radius := cfg.MaxRadius
		if maxCO2 > 0 {
			radius = cfg.MaxRadius * vg.Length(math.Sqrt(co2[i]/maxCO2))
		}
		gs := draw.GlyphStyle{
			Color:  col,
			Radius: radius,
			Shape:  draw.CircleGlyph{},
		}
		if err := c.DrawVector(pt, col, edge, gs); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: ic}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("stocktake: writing map: %v", err)
	}
	return f.Close()
}
