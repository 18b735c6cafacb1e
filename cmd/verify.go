package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrofmt/go-t64/internal/services"
)

var verifyOutfile string

var verifyCmd = &cobra.Command{
	Use:   "verify [image]",
	Short: "Verify a T64 image, report problems, optionally write a fixed copy",
	Long: `Verify a T64 image and report every problem found.

With --output the repaired image is written out; without it the image is
only inspected. The command exits non-zero when the image was faulty, so
it can be used to scan collections.

Examples:
  # Inspect a t64 file for errors
  go-t64 verify demos.t64

  # Fix a t64 file and save as a new file
  go-t64 verify demos.t64 -o demos-fixed.t64`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(args[0])
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyOutfile, "output", "o", "", "write fixed image to this path")
}

func runVerify(path string) error {
	config, err := LoadToolConfig()
	if err != nil {
		return err
	}
	if config.Quiet {
		quiet = true
	}

	img, err := services.OpenImage(path)
	if err != nil {
		return err
	}

	fixes := img.Verify()
	if !quiet {
		img.Dump(os.Stdout)
	}

	if verifyOutfile != "" {
		if config.BackupOnOverwrite {
			if err := services.BackupFile(verifyOutfile); err != nil {
				return err
			}
		}
		if err := img.WriteImage(verifyOutfile); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("wrote fixed image to '%s'\n", verifyOutfile)
		}
	}

	if fixes > 0 {
		// non-zero exit for faulty source images, the fixed copy (if
		// requested) has already been written
		return fmt.Errorf("image was faulty: %d fixes applied", fixes)
	}
	return nil
}
