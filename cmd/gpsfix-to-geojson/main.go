package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lib "github.com/urban-mobility-tools/gpsfix-to-geojson"
	"github.com/urban-mobility-tools/gpsfix-to-geojson/config"
)

var (
	configPath  string
	inputSource string
	outputPath  string
	rejectsPath string
	delimiter   string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "gpsfix-to-geojson",
	Short: "Segment device GPS fixes into trips and emit styled GeoJSON",
	Long: `gpsfix-to-geojson reads a delimited table of device-reported GPS
fixes, drops malformed rows into a reject log, splits each device's
time-ordered track into trips at time or distance gaps, and writes one
styled LineString feature per trip with its kinematic statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if inputSource != "" {
			cfg.Input.Source = inputSource
		}
		if outputPath != "" {
			cfg.Output.GeoJSONPath = outputPath
		}
		if rejectsPath != "" {
			cfg.Output.RejectsPath = rejectsPath
		}
		if delimiter != "" {
			cfg.Input.Delimiter = delimiter
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		lib.InitLogging(cfg.LogLevel)
		summary, err := lib.Run(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d trips from %d devices\n", summary.Trips, summary.Devices)
		return nil
	},
}

// Execute runs the root command. Any fatal error exits with code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yml")
	rootCmd.Flags().StringVarP(&inputSource, "input", "i", "", "input table: URL or local file path")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "GeoJSON output path")
	rootCmd.Flags().StringVar(&rejectsPath, "rejects", "", "reject log path")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", "", "field delimiter override (single character)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")
}

func main() {
	Execute()
}
