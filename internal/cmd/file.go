package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmdreko/narray"
	"github.com/kmdreko/narray/internal/serialization"
)

// genCmd writes a generated array to a .narr file.
var genCmd = &cobra.Command{
	Use:   "gen [file]",
	Short: "Generate an array and write it as a .narr file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		sizes := GetIntSlice(cmd, "sizes")
		if len(sizes) == 0 {
			sizes = []int{4, 4}
		}
		a := narray.FromFunc(func(i int) int64 { return int64(i) }, sizes...)

		f, err := os.Create(args[0])
		if err != nil {
			log.WithError(err).Error("creating output file")
			os.Exit(1)
		}
		defer f.Close()

		if err := narray.Save(f, a); err != nil {
			log.WithError(err).Error("writing array")
			os.Exit(1)
		}
		log.WithFields(log.Fields{"file": args[0], "sizes": a.Sizes()}).
			Debug("array written")
	},
}

// infoCmd prints the metadata of a .narr file without loading the data.
var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print the metadata of a .narr file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.WithError(err).Error("opening file")
			os.Exit(1)
		}
		defer f.Close()

		hdr, err := serialization.ReadHeader(f)
		if err != nil {
			log.WithError(err).Error("reading header")
			os.Exit(1)
		}

		fmt.Printf("format:  v%d\n", hdr.FormatVersion)
		fmt.Printf("element: %s\n", hdr.ElementType)
		fmt.Printf("sizes:   %v\n", hdr.Sizes)
		fmt.Printf("created: %s\n", hdr.CreatedAt)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(infoCmd)
	genCmd.Flags().IntSlice("sizes", nil, "dimension sizes of the generated array")
}
