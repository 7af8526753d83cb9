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

// Package nziputil ties the nzip analysis packages to a command-line
// interface.
package nziputil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/nzip"
	"github.com/spatialmodel/nzip/macc"
	"github.com/spatialmodel/nzip/scenario"
	"github.com/spatialmodel/nzip/stocktake"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the toolkit.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ResultsFile",
			usage: `
              ResultsFile is the path to the NZIP scenario results CSV file.
              It can contain environment variables.`,
			defaultVal: "${NZIPDATA}/nzip_balanced_scenario_results.csv",
			flagsets: []*pflag.FlagSet{
				summaryCmd.Flags(), energyCmd.Flags(), emissionsCmd.Flags(), storageCmd.Flags(),
			},
		},
		{
			name: "ExcelSheet",
			usage: `
              ExcelSheet is the worksheet to read when ResultsFile is a
              Microsoft Excel workbook rather than a CSV file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{summaryCmd.Flags()},
		},
		{
			name: "BeginYear",
			usage: `
              BeginYear is the first year (inclusive) of the analysis range.`,
			defaultVal: scenario.FirstYear,
			flagsets: []*pflag.FlagSet{
				energyCmd.Flags(), emissionsCmd.Flags(),
			},
		},
		{
			name: "EndYear",
			usage: `
              EndYear is the last year (inclusive) of the analysis range.`,
			defaultVal: scenario.LastYear,
			flagsets: []*pflag.FlagSet{
				energyCmd.Flags(), emissionsCmd.Flags(),
			},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the generated chart or map is written to.
              It can contain environment variables.`,
			shorthand:  "o",
			defaultVal: "output.png",
			flagsets: []*pflag.FlagSet{
				energyCmd.Flags(), emissionsCmd.Flags(), storageCmd.Flags(),
				maccCmd.Flags(), mapCmd.Flags(),
			},
		},
		{
			name: "Expression",
			usage: `
              Expression is an optional arithmetic expression over the
              variables 'baseline' and 'total' that is evaluated per fuel and
              year and printed as a table, for example 'total - baseline'.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "MACC.OptionsFile",
			usage: `
              MACC.OptionsFile is a CSV file of abatement options with 'Cost'
              and 'Volume' columns. If it is empty, the built-in synthetic CCS
              options are used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{maccCmd.Flags()},
		},
		{
			name: "MACC.Threshold",
			usage: `
              MACC.Threshold is the ETS carbon price the cost bars are split
              at [£/t CO2].`,
			defaultVal: macc.DefaultThreshold,
			flagsets:   []*pflag.FlagSet{maccCmd.Flags()},
		},
		{
			name: "Stocktake.PointSourceFile",
			usage: `
              Stocktake.PointSourceFile is the path to the NAEI point-source
              CO2 CSV file. It can contain environment variables.`,
			defaultVal: "${NZIPDATA}/point_sources_CO2_2022.csv",
			flagsets:   []*pflag.FlagSet{stocktakeCmd.Flags(), mapCmd.Flags()},
		},
		{
			name: "Stocktake.Sectors",
			usage: `
              Stocktake.Sectors lists the SIC sectors broken out in the
              stocktake report as candidates for carbon capture.`,
			defaultVal: stocktake.TargetSectors,
			flagsets:   []*pflag.FlagSet{stocktakeCmd.Flags()},
		},
		{
			name: "Stocktake.TopN",
			usage: `
              Stocktake.TopN is the number of largest emitters listed in the
              stocktake report.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{stocktakeCmd.Flags()},
		},
		{
			name: "Stocktake.BackgroundShapefile",
			usage: `
              Stocktake.BackgroundShapefile is a polygon shapefile of land
              outlines drawn behind the emitters map. It can contain
              environment variables.`,
			defaultVal: "${NZIPDATA}/shapefiles/Europe/Europe_merged.shp",
			flagsets:   []*pflag.FlagSet{mapCmd.Flags()},
		},
		{
			name: "Stocktake.MapConfigFile",
			usage: `
              Stocktake.MapConfigFile is an optional TOML file of map drawing
              settings (viewport bounds, bubble radius, image size). Settings
              in the file override the defaults.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{mapCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("NZIP")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(summaryCmd)
	Root.AddCommand(energyCmd)
	Root.AddCommand(emissionsCmd)
	Root.AddCommand(storageCmd)
	Root.AddCommand(maccCmd)
	Root.AddCommand(stocktakeCmd)
	Root.AddCommand(mapCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("nzip: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "nzip",
	Short: "A toolkit for analyzing NZIP scenario results.",
	Long: `nzip analyzes Net-Zero Industrial Pathways scenario results and UK
point-source emissions. Use the subcommands specified below to access the
analyses.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'NZIP_var' where 'var' is
the name of the variable to be set. Many configuration variables are
additionally allowed to contain environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of the toolkit.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("nzip v%s\n", nzip.Version)
	},
	DisableAutoGenTag: true,
}

// resultsTable loads the scenario results from the configured
// location, reading a worksheet when ExcelSheet is set and a CSV file
// otherwise.
func resultsTable() (*nzip.Table, error) {
	file := Cfg.GetString("ResultsFile")
	if sheet := Cfg.GetString("ExcelSheet"); sheet != "" {
		return nzip.ReadExcel(file, sheet)
	}
	return nzip.ReadCSVFile(file)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the columns of a results table.",
	Long: `summary lists the columns of the scenario results table, collapsing
annual series into year ranges, followed by the table's column and row
counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resultsTable()
		if err != nil {
			return err
		}
		s := nzip.SummarizeTable(t)
		cmd.Println("Column names:")
		for _, line := range s.Lines {
			cmd.Println(line)
		}
		cmd.Printf("\nTotal number of columns: %d\n", s.Columns)
		cmd.Printf("Total number of rows: %d\n", s.Rows)
		return nil
	},
	DisableAutoGenTag: true,
}

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Chart baseline and total energy use by fuel.",
	Long: `energy extracts every fuel's baseline and total use series from the
scenario results, sums them across sites, and draws them on one time-series
chart. When Expression is set it is additionally evaluated over each fuel's
'baseline' and 'total' series and printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resultsTable()
		if err != nil {
			return err
		}
		begin, end := Cfg.GetInt("BeginYear"), Cfg.GetInt("EndYear")
		uses, err := scenario.Extract(t, begin, end)
		if err != nil {
			return err
		}
		if expr := Cfg.GetString("Expression"); expr != "" {
			if err := printDerived(cmd, uses, expr); err != nil {
				return err
			}
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		log.WithFields(logrus.Fields{
			"years":  fmt.Sprintf("%d-%d", begin, end),
			"output": out,
		}).Info("writing energy use chart")
		return scenario.PlotFuelUse(uses, out)
	},
	DisableAutoGenTag: true,
}

// printDerived evaluates expr over each fuel's baseline and total
// series and prints one table per fuel that has data.
func printDerived(cmd *cobra.Command, uses []scenario.FuelUse, expr string) error {
	for _, u := range uses {
		if len(u.Baseline.Values) == 0 || len(u.Total.Values) == 0 {
			continue
		}
		d, err := scenario.Derive(expr, map[string]scenario.Series{
			"baseline": u.Baseline,
			"total":    u.Total,
		})
		if err != nil {
			return err
		}
		cmd.Printf("%s (%s):\n", u.Fuel.Name, expr)
		for i, y := range d.Years {
			cmd.Printf("  %d: %g\n", y, d.Values[i])
		}
	}
	return nil
}

var emissionsCmd = &cobra.Command{
	Use:   "emissions",
	Short: "Chart CO2 emissions accounting series.",
	Long: `emissions extracts the CO2 accounting series from the scenario
results, derives combustion CO2 for natural gas and petroleum from emission
factors, and draws everything on one time-series chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resultsTable()
		if err != nil {
			return err
		}
		r, err := scenario.Emissions(t, Cfg.GetInt("BeginYear"), Cfg.GetInt("EndYear"))
		if err != nil {
			return err
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		log.WithFields(logrus.Fields{"output": out}).Info("writing emissions chart")
		return scenario.PlotEmissions(r, out)
	},
	DisableAutoGenTag: true,
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Chart projected consumption against stored CO2.",
	Long: `storage draws the linear oil and gas consumption projections as
stacked areas, overlays the CO2 stored by NZIP industries from the scenario
results, and adds the assumed stored-fraction schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resultsTable()
		if err != nil {
			return err
		}
		stored, err := scenario.ExtractSeries(t, scenario.StoredCO2Label,
			scenario.StorageFirstYear, scenario.StorageLastYear)
		if err != nil {
			return err
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		log.WithFields(logrus.Fields{"output": out}).Info("writing storage chart")
		return scenario.PlotStorage(scenario.LinearConsumption(), scenario.LinearConsumption(),
			stored, scenario.StoredFraction(), out)
	},
	DisableAutoGenTag: true,
}

var maccCmd = &cobra.Command{
	Use:   "macc",
	Short: "Draw a marginal abatement cost curve for CCS options.",
	Long: `macc draws a marginal abatement cost curve, splitting each option's
cost bar at the configured ETS price, and prints curve statistics. Options
come from MACC.OptionsFile when set, and from the built-in synthetic CCS
options otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var c *macc.Curve
		if file := Cfg.GetString("MACC.OptionsFile"); file != "" {
			t, err := nzip.ReadCSVFile(file)
			if err != nil {
				return err
			}
			if c, err = macc.FromTable(t); err != nil {
				return err
			}
		} else {
			c = macc.SyntheticCCS()
		}
		threshold := Cfg.GetFloat64("MACC.Threshold")
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		log.WithFields(logrus.Fields{"options": len(c.Options), "output": out}).
			Info("writing abatement cost curve")
		if err := c.Plot(threshold, out); err != nil {
			return err
		}
		s := c.Stats(threshold)
		cmd.Printf("Total potential abatement: %.2f MtCO2/yr\n", s.TotalAbatement)
		cmd.Printf("Average cost: %.2f £/tCO2\n", s.MeanCost)
		cmd.Printf("Minimum cost: %.2f £/tCO2\n", s.MinCost)
		cmd.Printf("Maximum cost: %.2f £/tCO2\n", s.MaxCost)
		cmd.Printf("Number of options below %.0f £/tCO2: %d\n", threshold, s.BelowThreshold)
		return nil
	},
	DisableAutoGenTag: true,
}

// pointSources loads the configured NAEI point-source table.
func pointSources() ([]*stocktake.PointSource, error) {
	t, err := nzip.ReadCSVFile(Cfg.GetString("Stocktake.PointSourceFile"))
	if err != nil {
		return nil, err
	}
	return stocktake.Load(t)
}

var stocktakeCmd = &cobra.Command{
	Use:   "stocktake",
	Short: "Report on UK point-source CO2 emissions.",
	Long: `stocktake totals the NAEI point-source CO2 emissions, breaks the
capture-relevant sectors out, and lists the largest emitters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := pointSources()
		if err != nil {
			return err
		}
		sectors, err := getStringSlice("Stocktake.Sectors", Cfg)
		if err != nil {
			return err
		}
		r := stocktake.Take(sources, sectors, Cfg.GetInt("Stocktake.TopN"))
		return r.Write(cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map UK point-source CO2 emissions as bubbles.",
	Long: `map draws the NAEI point sources as bubbles sized and colored by
CO2 over a land-outline shapefile, reprojecting the plant coordinates from
the British National Grid to longitude and latitude.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := pointSources()
		if err != nil {
			return err
		}
		cfg := stocktake.MapConfig{
			BackgroundShapefile: os.ExpandEnv(Cfg.GetString("Stocktake.BackgroundShapefile")),
		}
		if cfgFile := Cfg.GetString("Stocktake.MapConfigFile"); cfgFile != "" {
			f, err := os.Open(os.ExpandEnv(cfgFile))
			if err != nil {
				return fmt.Errorf("nzip: opening map configuration: %v", err)
			}
			c, err := stocktake.ReadMapConfig(f)
			f.Close()
			if err != nil {
				return err
			}
			if c.BackgroundShapefile != "" {
				cfg.BackgroundShapefile = os.ExpandEnv(c.BackgroundShapefile)
			}
			cfg.W, cfg.E, cfg.S, cfg.N = c.W, c.E, c.S, c.N
			cfg.MaxRadius, cfg.Width, cfg.Height = c.MaxRadius, c.Width, c.Height
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		log.WithFields(logrus.Fields{"plants": len(sources), "output": out}).
			Info("writing point-source map")
		return stocktake.Map(sources, cfg, out)
	},
	DisableAutoGenTag: true,
}
