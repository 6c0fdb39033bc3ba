package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rowset/rowset/core"
	"github.com/rowset/rowset/core/format"
	"github.com/rowset/rowset/params"
)

var previewFlags struct {
	connection string
	table      string
	schema     string
	where      string
	fields     string
	limit      int
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the first rows of a table",
	Long: `Preview renders the first rows of a table as an aligned terminal table.
It takes the same selection flags as export, plus a row limit.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewFlags.connection, "connection", "c", "", "name or id of the configured source")
	previewCmd.Flags().StringVarP(&previewFlags.table, "table", "t", "", "table to preview")
	previewCmd.Flags().StringVar(&previewFlags.schema, "schema", "", "schema qualifying the table")
	previewCmd.Flags().StringVar(&previewFlags.where, "where", "", "filter predicate, passed to the source verbatim")
	previewCmd.Flags().StringVar(&previewFlags.fields, "fields", "", `fields to show ("name flags;name flags"), empty for all`)
	previewCmd.Flags().IntVar(&previewFlags.limit, "limit", 50, "maximum number of rows to show")

	_ = previewCmd.MarkFlagRequired("connection")
	_ = previewCmd.MarkFlagRequired("table")
}

func runPreview(cmd *cobra.Command, args []string) error {
	conn, _, err := openConnection(previewFlags.connection)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Export(cmd.Context(), &core.ExportOptions{
		Table:  previewFlags.table,
		Schema: previewFlags.schema,
		Fields: params.ParseFieldList(previewFlags.fields),
		Where:  previewFlags.where,
		Limit:  previewFlags.limit,
	}, format.NewTable(os.Stdout))

	return err
}
