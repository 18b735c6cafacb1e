package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrofmt/go-t64/internal/services"
)

var (
	extractIndex int
	extractAll   bool
	extractDir   string
)

var extractCmd = &cobra.Command{
	Use:   "extract [image]",
	Short: "Extract program files from a T64 image",
	Long: `Extract program files from a T64 image as .prg files.

The image is repaired in memory first so the extracted files use the
real end addresses, not the (frequently wrong) declared ones. Memory
snapshot records are skipped.

Examples:
  # Extract all program files
  go-t64 extract demos.t64 --all

  # Extract the program file at index 2
  go-t64 extract demos.t64 -i 2`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntVarP(&extractIndex, "index", "i", -1, "index of the record to extract")
	extractCmd.Flags().BoolVarP(&extractAll, "all", "x", false, "extract all program files")
	extractCmd.Flags().StringVarP(&extractDir, "dest", "d", "", "destination directory")
}

func runExtract(path string) error {
	if !extractAll && extractIndex < 0 {
		return fmt.Errorf("nothing to extract: use --index or --all")
	}

	config, err := LoadToolConfig()
	if err != nil {
		return err
	}
	dir := extractDir
	if dir == "" {
		dir = config.ExtractDir
	}

	img, err := services.OpenImage(path)
	if err != nil {
		return err
	}
	// repair quietly so RealEndAddr is authoritative
	img.Verify()

	if extractAll {
		extracted, skipped, err := img.ExtractAll(dir)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("extracted %d files", extracted)
			if skipped > 0 {
				fmt.Printf(", skipped %d memory snapshots", skipped)
			}
			fmt.Println()
		}
		return nil
	}

	name, skipped, err := img.ExtractRecord(extractIndex, dir)
	if err != nil {
		return err
	}
	if !quiet {
		if skipped {
			fmt.Printf("skipping record %d: memory snapshot\n", extractIndex)
		} else {
			fmt.Printf("writing prg file '%s'\n", name)
		}
	}
	return nil
}
