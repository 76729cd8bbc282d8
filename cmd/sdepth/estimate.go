package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phagelab/sampledepth"
	"github.com/phagelab/sampledepth/internal/config"
	"github.com/phagelab/sampledepth/internal/types"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the number of samples needed to capture rare species",
	Long: `Estimate the minimum number of independent samples needed so that every
species present at or above the target copy number is captured with the
requested confidence.

Species abundances are modeled as Poisson-distributed with rate equal to the
target copy number. Each sample draws a fixed number of phage from a pool of
total-species x mean-copies units. Flag defaults can be overridden by a
.sdepth/config.yaml or SDEPTH_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := paramsFromFlags(cmd)
		noCurve, _ := cmd.Flags().GetBool("no-curve")
		showChart, _ := cmd.Flags().GetBool("chart")

		result, err := sampledepth.Estimate(params)
		if err != nil {
			red := color.New(color.FgRed).SprintFunc()
			if errors.Is(err, sampledepth.ErrDegenerate) {
				fmt.Fprintf(os.Stderr, "%s These parameters cannot reach %.0f%% confidence: %v\n",
					red("✗"), params.Confidence*100, err)
			} else {
				fmt.Fprintf(os.Stderr, "%s %v\n", red("✗"), err)
			}
			os.Exit(1)
		}

		if noCurve {
			result.Curve = nil
		}

		logEstimate(result)

		if jsonOutput {
			outputJSON(result)
			return
		}

		green := color.New(color.FgGreen).SprintFunc()
		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("\n%s %s samples needed\n\n", green("✓"), bold(fmt.Sprintf("%d", result.RequiredSamples)))
		fmt.Printf("This gives a %.0f%% probability of capturing species with %g or more copies\n",
			params.Confidence*100, params.TargetCopies)
		fmt.Printf("(pool: %d species x %g mean copies, %d phage per sample)\n\n",
			params.TotalSpecies, params.MeanCopies, params.PerSample)

		if len(result.Curve) > 0 {
			if showChart {
				renderChart(os.Stdout, result.Curve, params.Confidence*100)
			} else {
				renderCurveTable(os.Stdout, result.Curve, params.Confidence*100)
			}
		}
	},
}

// paramsFromFlags builds Parameters with the usual precedence:
// explicitly set flags win, otherwise config/env, otherwise defaults.
func paramsFromFlags(cmd *cobra.Command) types.Parameters {
	copies, _ := cmd.Flags().GetFloat64("copies")
	perSample, _ := cmd.Flags().GetInt("per-sample")
	species, _ := cmd.Flags().GetInt("species")
	meanCopies, _ := cmd.Flags().GetFloat64("mean-copies")
	confidence, _ := cmd.Flags().GetFloat64("confidence")

	if !cmd.Flags().Changed("copies") {
		copies = config.GetFloat64("copies")
	}
	if !cmd.Flags().Changed("per-sample") {
		perSample = config.GetInt("per-sample")
	}
	if !cmd.Flags().Changed("species") {
		species = config.GetInt("species")
	}
	if !cmd.Flags().Changed("mean-copies") {
		meanCopies = config.GetFloat64("mean-copies")
	}
	if !cmd.Flags().Changed("confidence") {
		confidence = config.GetFloat64("confidence")
	}

	return types.Parameters{
		TargetCopies: copies,
		PerSample:    perSample,
		TotalSpecies: species,
		MeanCopies:   meanCopies,
		Confidence:   confidence,
	}
}

func addParameterFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("copies", "c", 30, "Minimum copy number per species to capture (lambda)")
	cmd.Flags().IntP("per-sample", "p", 8000, "Phage drawn per sample")
	cmd.Flags().IntP("species", "s", 350000, "Total number of distinct species in the library")
	cmd.Flags().Float64P("mean-copies", "m", 30, "Mean copies per species in the library")
	cmd.Flags().Float64("confidence", 0.95, "Target capture confidence, between 0 and 1")
}

func init() {
	addParameterFlags(estimateCmd)
	estimateCmd.Flags().Bool("no-curve", false, "Skip the detection-probability curve")
	estimateCmd.Flags().Bool("chart", false, "Render the curve as an ASCII chart instead of a table")

	rootCmd.AddCommand(estimateCmd)
}
