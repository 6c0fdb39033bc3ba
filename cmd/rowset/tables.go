package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesFlags struct {
	connection string
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables a source exposes",
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVarP(&tablesFlags.connection, "connection", "c", "", "name or id of the configured source")

	_ = tablesCmd.MarkFlagRequired("connection")
}

func runTables(cmd *cobra.Command, args []string) error {
	conn, _, err := openConnection(tablesFlags.connection)
	if err != nil {
		return err
	}
	defer conn.Close()

	structure, err := conn.GetStructure()
	if err != nil {
		return fmt.Errorf("conn.GetStructure: %w", err)
	}

	for _, schema := range structure {
		if len(schema.Children) < 1 {
			fmt.Println(schema.Name)
			continue
		}

		fmt.Printf("%s:\n", schema.Name)
		for _, child := range schema.Children {
			if typ := child.Type.String(); typ != "" {
				fmt.Printf("  %s (%s)\n", child.Name, typ)
				continue
			}
			fmt.Printf("  %s\n", child.Name)
		}
	}

	return nil
}
