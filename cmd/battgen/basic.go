package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/battgen/battgen/cells"
	"github.com/battgen/battgen/pkg/pack"
	"github.com/battgen/battgen/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewChemistriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "chemistries",
		Short:   "Print the per-chemistry defaults table",
		GroupID: gReport,
		Long: `Print the default voltage window, cycle life and limits of every known chemistry.

The Other chemistry has no defaults and reports zero for every value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHEM\tVMIN\tVNOM\tVMAX\tCYCLES\tMAX C\tCP\tTEMP MAX\tTEMP MIN")
			for _, c := range pack.Chemistries() {
				d := pack.DefaultsFromChem(c)
				fmt.Fprintf(w, "%s\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
					c, d.VMin, d.VNom, d.VMax, d.CycleLife, d.MaxRateC, d.SpecificHeat, d.TempMax, d.TempMin)
			}
			return w.Flush()
		},
	}
}

func NewCellsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "cells",
		Short:   "List bundled reference cells",
		GroupID: gReport,
		Long: `List the reference cells compiled into battgen.

Any of them can be passed to --input-cell, optionally prefixed with "` + cells.BundledPrefix + `".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range cells.Names() {
				m, err := cells.Load(name)
				if err != nil {
					return err
				}
				cmd.Printf("%-14s %-6s %-6s %s %vV %vAh\n", name, m.Chem, m.InputType, m.Shape, m.Voltage(), m.Ah())
			}
			return nil
		},
	}
}
