package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gen-entries/cmd/gen-entries/emit"
)

func newModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the artifacts --mode can generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printModes(cmd)
			return nil
		},
	}
}

func printModes(cmd *cobra.Command) {
	var data [][]string
	for _, m := range emit.Modes() {
		data = append(data, []string{m.String(), m.Description()})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"MODE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
