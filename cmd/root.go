package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "go-t64",
	Short: "T64 tape image verifier, fixer and converter",
	Long: `go-t64 inspects, repairs and converts Commodore 64 T64 tape images.

Many T64 files in the wild were produced by buggy authoring tools and
carry wrong magic bytes, bad record counters or incorrect end addresses.
go-t64 detects these problems, repairs them deterministically and writes
a canonical image back out.

Commands:
  verify      Verify a T64 image, report problems, optionally write a fixed copy
  extract     Extract program files from a T64 image
  create      Create a new T64 image from .prg files
  d64         Create a blank, formatted D64 disk image`,
	Version: "0.4.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
