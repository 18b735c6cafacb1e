package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retrofmt/go-t64/internal/services"
)

var (
	d64Name string
	d64ID   string
)

var d64Cmd = &cobra.Command{
	Use:   "d64 [image]",
	Short: "Create a blank, formatted D64 disk image",
	Long: `Create a blank 35-track D64 disk image with an initialized BAM.

Example:
  go-t64 d64 blank.d64 --name "my disk" --id "gt"`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runD64(args[0])
	},
}

func init() {
	rootCmd.AddCommand(d64Cmd)

	d64Cmd.Flags().StringVar(&d64Name, "name", "", "disk name (defaults to the image base name)")
	d64Cmd.Flags().StringVar(&d64ID, "id", "", "disk ID")
}

func runD64(path string) error {
	img := services.NewD64Image()

	name := d64Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	img.SetDiskName(name)
	if d64ID != "" {
		img.SetDiskID(d64ID)
	}

	if err := img.WriteD64(path); err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("created '%s'\n", path)
	}
	return nil
}
