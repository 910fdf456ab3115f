// Package cli implements the stcdump command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grigorig/stcdump/internal/logging"
	"github.com/grigorig/stcdump/pkg/version"
	"github.com/grigorig/stcdump/report"
	"github.com/grigorig/stcdump/sigscan"
	"github.com/grigorig/stcdump/stcisp"
)

var (
	logLevel  = levelValue{level: zerolog.InfoLevel}
	noColor   bool
	chunkSize int
)

var rootCmd = &cobra.Command{
	Use:   "stcdump <stc-isp-executable> [<csv-output-file>]",
	Short: "Extract the MCU model database from an STC-ISP executable",
	Long: `stcdump locates the MCU Info Table and Name Table embedded in an
STC-ISP flash tool executable and prints the model list on standard
output, in the form used by stcgal's models file.

The optional CSV output file receives one row per model with the flags
field expanded bit by bit, to help identify the meaning of new flags.

Example:
  stcdump stc-isp-v6.91Q.exe MCUFlags.csv > MCUModels.txt`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDump,
}

func init() {
	rootCmd.Flags().Var(&logLevel, "log-level",
		"log verbosity (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"disable colored log output")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", sigscan.DefaultChunkSize,
		"scan read buffer size in bytes")

	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.String())
		},
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.Config{
		Level:  logLevel.String(),
		Pretty: !noColor,
	})

	ex := stcisp.NewExtractor(
		stcisp.WithChunkSize(chunkSize),
		stcisp.WithLogger(logger),
	)

	db, err := ex.ExtractFile(args[0])
	if err != nil {
		logger.Error().Err(err).Str("input", args[0]).Msg("extraction failed")
		return err
	}

	if len(args) > 1 {
		if err := writeCSVFile(args[1], db.Devices); err != nil {
			logger.Error().Err(err).Str("output", args[1]).Msg("csv output failed")
			return err
		}
		logger.Debug().Str("output", args[1]).Msg("csv written")
	}

	return report.WriteModels(cmd.OutOrStdout(), db.Devices)
}

func writeCSVFile(path string, devices []stcisp.Device) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	if err := report.WriteCSV(f, devices); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
