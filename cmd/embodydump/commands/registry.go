package commands

import (
	"fmt"

	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/cmd/embodydump/internal/render"
	"github.com/aidee-health/embodycodec/enumreg"
	"github.com/spf13/cobra"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Print the attribute and enum registries",
	Long: `Prints every entry of the Attribute Registry and the Enum Registry
the codec uses to interpret get/set/report message bodies, so a reader
can match a wire attribute id or enum code against its declared width,
unit, and name without reading the Go source.`,
}

var registryAttributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Print the attribute registry",
	RunE:  runRegistryAttributes,
}

var registryEnumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "Print the enum registries",
	RunE:  runRegistryEnums,
}

func init() {
	registryCmd.AddCommand(registryAttributesCmd)
	registryCmd.AddCommand(registryEnumsCmd)
	rootCmd.AddCommand(registryCmd)
}

func runRegistryAttributes(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(attr.All()))
	for _, d := range attr.All() {
		rows = append(rows, []string{
			fmt.Sprintf("%#02x", d.ID),
			d.Name,
			fmt.Sprintf("%d", d.Width),
			d.Unit.String(),
		})
	}

	render.Table(cmd.OutOrStdout(), []string{"id", "name", "width", "unit"}, rows)

	return nil
}

// enumTable is implemented by every *enumreg.Table[T] instantiation so
// runRegistryEnums can print them uniformly without naming each type
// parameter.
type enumTable interface {
	Name() string
	Entries() [][2]string
}

func runRegistryEnums(cmd *cobra.Command, args []string) error {
	tables := []enumTable{
		enumreg.FirmwareStates,
		enumreg.ChargeStates,
		enumreg.BLEPairingStates,
		enumreg.FileKinds,
		enumreg.ReportingTriggerModes,
	}

	var rows [][]string

	for _, tbl := range tables {
		for _, e := range tbl.Entries() {
			rows = append(rows, []string{tbl.Name(), e[0], e[1]})
		}
	}

	render.Table(cmd.OutOrStdout(), []string{"enum", "code", "name"}, rows)

	return nil
}
