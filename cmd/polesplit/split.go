// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polesplit/internal/extract"
	"github.com/pdiddy/polesplit/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split <text>...",
	Short: "Split marker text given on the command line",
	Long: `Split parses each argument as one marker value and prints the Marker
Name, Engine Number and Pole Number it yields. Useful for checking how a
particular cell will be parsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		e := extract.New(logger)
		w := cmd.OutOrStdout()

		if jsonOutput {
			out := make([]types.ExtractedFields, len(args))
			for i, a := range args {
				out[i] = e.ExtractText(a)
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprintf(w, "%-40s  %-30s  %-8s  %s\n", "Input", types.ColumnMarkerName, "Engine", "Pole")
		fmt.Fprintln(w, strings.Repeat("-", 100))
		for _, a := range args {
			v := e.ExtractText(a).Values()
			fmt.Fprintf(w, "%-40s  %-30s  %-8s  %s\n", a, v[0], v[1], v[2])
		}
		if n := e.Unparsed(); n > 0 {
			fmt.Fprintf(w, "\n%d unparsed\n", n)
		}
		return nil
	},
}

func init() {
	splitCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(splitCmd)
}
