package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phagelab/sampledepth"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the detection-probability curve for a fixed sample count",
	Long: `Evaluate the capture probability for every copy number from 1 up to twice
the target copy number, given an explicit number of samples. Use this to see
what coverage an already-planned sampling run buys you, without re-solving
for the sample count.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := paramsFromFlags(cmd)
		numSamples, _ := cmd.Flags().GetInt("samples")
		asCSV, _ := cmd.Flags().GetBool("csv")
		showChart, _ := cmd.Flags().GetBool("chart")

		if numSamples < 0 {
			fmt.Fprintf(os.Stderr, "Error: --samples must be non-negative\n")
			os.Exit(1)
		}

		curve, err := sampledepth.DetectionCurve(params, numSamples)
		if err != nil {
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(os.Stderr, "%s %v\n", red("✗"), err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(curve)
			return
		}

		if asCSV {
			fmt.Println("copies,probability")
			for _, pt := range curve {
				fmt.Printf("%d,%.4f\n", pt.Copies, pt.Probability)
			}
			return
		}

		fmt.Printf("\nDetection probability across %d sample(s):\n\n", numSamples)
		if showChart {
			renderChart(os.Stdout, curve, params.Confidence*100)
		} else {
			renderCurveTable(os.Stdout, curve, params.Confidence*100)
		}
	},
}

func init() {
	addParameterFlags(curveCmd)
	curveCmd.Flags().IntP("samples", "n", 1, "Number of samples to evaluate the curve at")
	curveCmd.Flags().Bool("csv", false, "Output the curve as CSV")
	curveCmd.Flags().Bool("chart", false, "Render the curve as an ASCII chart instead of a table")

	rootCmd.AddCommand(curveCmd)
}
