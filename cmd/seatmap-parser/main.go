// Package main provides the CLI entry point for seatmap-parser.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thomasbreydo/seatmap-parser/config"
	"github.com/thomasbreydo/seatmap-parser/formatter"
	"github.com/thomasbreydo/seatmap-parser/internal"
	"github.com/thomasbreydo/seatmap-parser/seatmap"
	"github.com/thomasbreydo/seatmap-parser/server"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	outputDir string
	pretty    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "seatmap-parser",
		Version: version,
		Short:   "Convert airline seat-map XML (OpenTravel or IATA) to normalized JSON",
		Long: `seatmap-parser converts airline seat-map documents, in either the
SOAP-wrapped OpenTravel format or the IATA EDIST format, into a single
row-indexed JSON structure with uniform availability, pricing, and
seat-type fields.`,
	}

	convertCmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert XML seat-map files to JSON artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for JSON artifacts (default: output.dir from config, else next to each input)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output (default: output.pretty from config)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion over HTTP",
		RunE:  runServe,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the seatmap-parser version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(convertCmd, serveCmd, versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win; unset flags fall back to the loaded config.
	dir := outputDir
	if !cmd.Flags().Changed("output-dir") {
		dir = config.Config.Output.Dir
	}
	prettyOut := pretty
	if !cmd.Flags().Changed("pretty") {
		prettyOut = config.Config.Output.Pretty
	}

	for _, path := range args {
		m, err := seatmap.DecodeFile(path)
		if err != nil {
			// All-or-nothing per document: report and write no artifact.
			return fmt.Errorf("%s: %w", path, err)
		}

		buf, err := formatter.BuildJSON(m, prettyOut)
		if err != nil {
			return fmt.Errorf("%s: serialize: %w", path, err)
		}

		outDir := dir
		if outDir == "" {
			outDir = filepath.Dir(path)
		} else if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		outPath := filepath.Join(outDir, formatter.OutputName(path))
		if err := os.WriteFile(outPath, buf, 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		log.Printf("wrote %s (%d rows)", outPath, m.Len())
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	server.Run(config.Config)
	return nil
}
