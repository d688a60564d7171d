package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/aidee-health/embodycodec/cmd/embodydump/internal/render"
	"github.com/aidee-health/embodycodec/frame"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <capture-file>",
	Short: "Tail a growing capture file and decode frames as they arrive",
	Long: `Watches a capture file a transport is appending to live (e.g. a serial
or BLE logger writing raw bytes as it receives them) and decodes each
newly-appended chunk as a stream: bytes that don't yet form a complete
frame are held until more arrive, exercising the same Need(n)/Consumed
partial-buffer contract a real transport driver relies on.

Exits on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open capture file")
	}
	defer f.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return errors.Wrap(err, "watch capture file")
	}

	dec := newStreamDecoder(cmd.OutOrStdout())

	// Decode whatever the file already holds before waiting on new events.
	if err := dec.consume(f); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Write == fsnotify.Write {
				if err := dec.consume(f); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return errors.Wrap(err, "watch capture file")
		}
	}
}

// streamDecoder accumulates bytes read off a growing file and feeds them
// to frame.Decode, carrying any undecoded tail across reads the way a
// transport driver buffers partial frames between socket reads (the
// frame format's "callers own ... buffering across frame boundaries").
type streamDecoder struct {
	out     io.Writer
	pending []byte
}

func newStreamDecoder(out io.Writer) *streamDecoder {
	return &streamDecoder{out: out}
}

func (d *streamDecoder) consume(f *os.File) error {
	chunk := make([]byte, 4096)

	for {
		n, err := f.Read(chunk)
		if n > 0 {
			d.pending = append(d.pending, chunk[:n]...)
			d.drain()
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return errors.Wrap(err, "read capture file")
		}
	}
}

func (d *streamDecoder) drain() {
	for len(d.pending) > 0 {
		outcome := frame.Decode(d.pending)

		switch outcome.Kind {
		case frame.OutcomeFrame:
			fmt.Fprintf(d.out, "%s %+v\n", outcome.Message.Type(), outcome.Message)
			d.pending = d.pending[outcome.Consumed:]
		case frame.OutcomeErr:
			render.KeyValue(d.out, [][2]string{{"error", outcome.Err.Error()}})
			d.pending = d.pending[outcome.Consumed:]
		case frame.OutcomeNeed:
			return
		}
	}
}
