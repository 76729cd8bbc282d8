package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/phagelab/sampledepth/internal/config"
)

var (
	jsonOutput bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "sdepth",
	Short: "sdepth - Sampling depth calculator for phage display libraries",
	Long: `Estimate how many samples you need to draw from a phage display library
to capture every species at or above a target copy number, and chart the
detection probability across copy numbers.

The model treats species abundances as Poisson-distributed around the target
copy number and solves for the smallest sample count whose cumulative miss
probability drops below 1 - confidence (5% by default).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Apply viper configuration if flags weren't explicitly set.
		// Priority: flags > config file + env vars > defaults.
		if !cmd.Flags().Changed("json") {
			jsonOutput = config.GetBool("json")
		}
		if !cmd.Flags().Changed("log-file") && logFile == "" {
			logFile = config.GetString("log-file")
		}

		// Shared lab configs can pin a minimum tool version so everyone
		// runs an estimator with the same numerics.
		if required := config.GetString("require-version"); required != "" {
			if err := checkRequiredVersion(required); err != nil {
				return err
			}
		}
		return nil
	},
}

// checkRequiredVersion compares the running version against a minimum
// version pinned in config.
func checkRequiredVersion(required string) error {
	current := "v" + Version
	min := required
	if len(min) > 0 && min[0] != 'v' {
		min = "v" + min
	}
	if !semver.IsValid(min) {
		return fmt.Errorf("invalid require-version in config: %q", required)
	}
	if semver.Compare(current, min) < 0 {
		return fmt.Errorf("sdepth %s is older than the version required by config (%s); please upgrade", Version, required)
	}
	return nil
}

func outputJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append an audit record of each run to this file")
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Handle --version flag (in addition to 'version' subcommand)
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("sdepth version %s (%s)\n", Version, Build)
			return
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
