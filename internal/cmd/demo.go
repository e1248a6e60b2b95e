package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmdreko/narray"
)

// demoCmd walks through the core view transformations on a generated
// array, printing each view's geometry and contents.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase the view transformations on a generated array.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		sizes := GetIntSlice(cmd, "sizes")
		if len(sizes) == 0 {
			sizes = []int{4, 3, 2}
		}
		a := narray.FromFunc(func(i int) int { return i }, sizes...)
		log.WithField("sizes", a.Sizes()).Debug("created source array")

		describe("source", a)
		if a.Empty() {
			fmt.Println("empty array, nothing to transform")
			return
		}
		if a.Dims() >= 1 {
			describe("sliceX(0)", a.SliceX(0))
			describe("flipX", a.FlipX())
		}
		if a.Dims() >= 2 {
			describe("transpose", a.Transpose())
		}
		describe("repeat(2)", a.Repeat(2))

		flat := a
		if !a.IsContiguous() || !a.IsAligned() {
			log.Debug("view not reshapeable in place, cloning first")
			flat = a.Clone()
		}
		describe("flattened", flat.Reshape(a.Size()))
	},
}

// statsCmd computes the arithmetic reductions over a generated array.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute reductions over a generated array.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		sizes := GetIntSlice(cmd, "sizes")
		if len(sizes) == 0 {
			sizes = []int{10, 10}
		}
		seed := GetInt(cmd, "seed")
		a := narray.FromFunc(func(i int) int {
			return (i*2654435761 + seed) % 1000
		}, sizes...)
		if a.Empty() {
			fmt.Println("empty array, nothing to reduce")
			os.Exit(2)
		}

		fmt.Printf("sizes:  %v\n", a.Sizes())
		fmt.Printf("sum:    %d\n", narray.Sum(a))
		fmt.Printf("mean:   %d\n", narray.Mean(a))
		fmt.Printf("min:    %d at %v\n", narray.Min(a), narray.MinAt(a))
		fmt.Printf("max:    %d at %v\n", narray.Max(a), narray.MaxAt(a))
		fmt.Printf("median: %d\n", narray.Median(a))
		fmt.Printf("evens:  %d\n", narray.Count(a, func(v int) bool { return v%2 == 0 }))
	},
}

func describe(name string, a *narray.NArray[int]) {
	fmt.Printf("%-12s sizes=%v steps=%v contiguous=%v aligned=%v\n",
		name, a.Sizes(), a.Steps(), a.IsContiguous(), a.IsAligned())
	log.WithField("view", name).Debugf("%v", a)
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(statsCmd)
	demoCmd.Flags().IntSlice("sizes", nil, "dimension sizes of the generated array")
	statsCmd.Flags().IntSlice("sizes", nil, "dimension sizes of the generated array")
	statsCmd.Flags().Int("seed", 0, "seed offset for the generated values")
}
