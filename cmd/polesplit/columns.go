// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polesplit/internal/column"
	"github.com/pdiddy/polesplit/internal/tableio"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <input>",
	Short: "List the columns of a file and the detected marker column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		table, err := tableio.Read(args[0], sheet)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d rows, %d columns\n", table.Len(), len(table.Header))
		for i, h := range table.Header {
			fmt.Fprintf(w, "  %2d  %s\n", i+1, h)
		}

		d, err := column.Detect(table.Header)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nMarker column: %q (%s match)\n", d.Column, d.Strategy)
		return nil
	},
}

func init() {
	columnsCmd.Flags().String("sheet", "", "sheet name for Excel input")
	rootCmd.AddCommand(columnsCmd)
}
