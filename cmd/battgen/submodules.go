package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/battgen/battgen/pkg/pack"
)

func NewSubmodulesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "submodules <topology>",
		Short:   "List ways to split a pack into equal sub-modules",
		GroupID: gReport,
		Long: `List ways to split a pack into equal sub-modules.

Series counts below 25 that divide the pack series count are printed with the
voltage window of one sub-module. The window always assumes 3.7V to 4.1V per
cell, whatever the chemistry. Parallel counts below 25 that divide the pack
parallel count are printed as well.`,
		Example: "  battgen submodules 96S2P",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := parseTopology(args[0])
			m := pack.Module{Series: t.Series, Parallel: t.Parallel}
			subs := m.PossibleSubmodules()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(subs)
			}

			cmd.Printf("Pack is %s\n", t)
			cmd.Println(bold("Modules in series for easier alignment/placement:"))
			for _, g := range subs.Series {
				cmd.Printf("%d modules of %dS (%v/%vV) possible\n", g.Count, g.Series, g.VMin, g.VMax)
			}
			cmd.Println(bold("Modules in parallel for future expandability:"))
			for _, g := range subs.Parallel {
				cmd.Printf("%d modules of %dP in parallel possible\n", g.Count, g.Parallel)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
