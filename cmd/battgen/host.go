package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/battgen/battgen/pkg/powerinfo"
)

// readHostBattery is swapped out in tests.
var readHostBattery = powerinfo.Read

func NewHostCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "host",
		Short:   "Describe the batteries of this machine",
		GroupID: gReport,
		Long: `Describe the batteries of this machine.

Each battery is also shown as an equivalent single-cell module so its
figures can be compared with bundled and custom cells.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bats, err := readHostBattery()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bats)
			}

			r := newReporter(cmd.OutOrStdout())
			for _, b := range bats {
				printHostBattery(r, b)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func printHostBattery(r *reporter, b powerinfo.Battery) {
	r.printf("%s\n", bold("Battery %d:", b.Index))
	r.printf("  State: %s\n", b.State)
	r.printf("  Charge: %.1f%%\n", b.SoC()*100)
	r.printf("  Health: %.1f%%\n", b.Health()*100)
	r.printf("  Design capacity: %.2f Wh at %.2fV\n", b.Design/1000, b.DesignVoltage)
	r.printf("  Charge rate: %.2f W\n", b.ChargeRate/1000)
	r.printf("  Voltage: %.2fV\n", b.Voltage)
	r.printf("  As a module: ")
	r.electricalNominal(b.Module())
}
