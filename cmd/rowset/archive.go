package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowset/rowset/archive"
)

var archiveFlags struct {
	output string
}

var archiveCmd = &cobra.Command{
	Use:   "archive [files...]",
	Short: "Bundle files into a zip archive",
	Long: `Archive writes the given files into a single zip archive, in argument
order, each stored under its base name.

Example:
  rowset archive sites.csv readings.csv -o bundle.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVarP(&archiveFlags.output, "output", "o", "export.zip", "archive file to write")
}

func runArchive(cmd *cobra.Command, args []string) error {
	err := archive.Build(args, archiveFlags.output, func(index, total int, name string) {
		fmt.Printf("[%d/%d] %s\n", index, total, name)
	})
	if err != nil {
		return err
	}

	fmt.Printf("archived %d files to %s\n", len(args), archiveFlags.output)
	return nil
}
