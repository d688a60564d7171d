package commands

import (
	"fmt"
	"os"

	"github.com/aidee-health/embodycodec/cmd/embodydump/internal/render"
	"github.com/aidee-health/embodycodec/frame"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <capture-file>",
	Short: "Decode a byte capture into a table of frames",
	Long: `Reads a binary capture of raw bytes a transport recorded off the wire
(e.g. a BLE serial or USB CDC log) and decodes every frame found in it,
resynchronizing past any malformed frame rather than stopping.

Examples:
  embodydump decode session.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "read capture file")
	}

	rows := decodeAll(data)
	render.Table(cmd.OutOrStdout(), []string{"offset", "type", "result"}, rows)

	return nil
}

// decodeAll feeds data through frame.Decode until it is exhausted,
// exercising the Need/Frame/Err outcome contract: a malformed frame
// consumes Consumed bytes and decoding resumes from there, rather than
// aborting the whole capture.
func decodeAll(data []byte) [][]string {
	var rows [][]string

	offset := 0
	for len(data) > 0 {
		outcome := frame.Decode(data)

		switch outcome.Kind {
		case frame.OutcomeFrame:
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset),
				outcome.Message.Type().String(),
				fmt.Sprintf("%+v", outcome.Message),
			})
			data = data[outcome.Consumed:]
			offset += outcome.Consumed
		case frame.OutcomeErr:
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset),
				"-",
				fmt.Sprintf("error: %v", outcome.Err),
			})
			data = data[outcome.Consumed:]
			offset += outcome.Consumed
		case frame.OutcomeNeed:
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset),
				"-",
				fmt.Sprintf("truncated: need %d more byte(s)", outcome.NeedBytes),
			})

			return rows
		}
	}

	return rows
}
