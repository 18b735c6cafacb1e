package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrofmt/go-t64/internal/services"
)

var createCmd = &cobra.Command{
	Use:   "create [image] [prg-files...]",
	Short: "Create a new T64 image from .prg files",
	Long: `Create a new T64 image holding the given program files.

Each source file must be a .prg file: its first two bytes are taken as
the load address. The tape name derives from the image file name.

Example:
  go-t64 create awesome.t64 rasterblast.prg freezer.prg`,

	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(path string, sources []string) error {
	img, err := services.CreateImage(path, sources)
	if err != nil {
		return err
	}
	if err := img.WriteImage(path); err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("created '%s' with %d entries, %d bytes\n",
			path, len(img.Records), len(img.Data))
	}
	return nil
}
