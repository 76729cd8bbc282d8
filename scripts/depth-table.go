package main

import (
	"fmt"
	"log"

	"github.com/phagelab/sampledepth"
)

// Prints required sample counts across a grid of target copy numbers and
// per-sample picking depths, for eyeballing how picking depth trades off
// against sample count. Run with: go run scripts/depth-table.go

func requiredSamples(copies float64, perSample int) int {
	n, err := sampledepth.RequiredSamples(sampledepth.Parameters{
		TargetCopies: copies,
		PerSample:    perSample,
		TotalSpecies: 350000,
		MeanCopies:   30,
		Confidence:   0.95,
	})
	if err != nil {
		log.Fatal(err)
	}
	return n
}

func main() {
	fmt.Println("=== Required Samples by Copy Number and Picking Depth ===")
	fmt.Println("(350,000 species x 30 mean copies, 95% confidence)")
	fmt.Println()

	copyNumbers := []float64{5, 10, 20, 30, 50, 100, 200}
	pickingDepths := []int{1000, 2000, 4000, 8000, 16000, 32000}

	// Print table header
	fmt.Printf("%-10s", "Copies")
	for _, depth := range pickingDepths {
		fmt.Printf("%9d/s", depth)
	}
	fmt.Println()
	fmt.Println("----------------------------------------------------------------------")

	for _, copies := range copyNumbers {
		fmt.Printf("%-10g", copies)
		for _, depth := range pickingDepths {
			fmt.Printf("%11d", requiredSamples(copies, depth))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Each cell is the number of independent samples needed to capture")
	fmt.Println("species at or above that copy number with 95% probability.")
}
