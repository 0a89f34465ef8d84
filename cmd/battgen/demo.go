package main

import (
	"github.com/battgen/battgen/cells"
	"github.com/battgen/battgen/pkg/pack"
)

type demoPack struct {
	cell     string
	topology pack.Topology
}

var demoPacks = []demoPack{
	{cell: "leaf_2012", topology: pack.Topology{Series: 48, Parallel: 1}},
	{cell: "lfp_200ah", topology: pack.Topology{Series: 96, Parallel: 1}},
	{cell: "lfp_202ah", topology: pack.Topology{Series: 96, Parallel: 1}},
	{cell: "tesla_21700", topology: pack.Topology{Series: 96, Parallel: 10}},
}

func runDemo(r *reporter, soc float64) error {
	r.printf("Running demo...\n")

	for i, d := range demoPacks {
		switch i {
		case 0:
			r.printf("~~~~~~~Recreating 2012 Nissan LEAF pack:~~~~~~~~\n")
		case 1:
			r.printf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~\n")
			r.printf("making a pack from 200Ah cells....\n")
		}

		m, err := cells.Load(d.cell)
		if err != nil {
			return err
		}
		r.pack(cells.BundledPrefix+d.cell, m, d.topology, soc)
	}

	return nil
}
