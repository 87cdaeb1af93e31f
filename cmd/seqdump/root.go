package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/performancecopilot/seqbuffer"
	"github.com/performancecopilot/seqbuffer/layout"
)

type dumpOptions struct {
	layout  string
	order   string
	offset  int
	count   int
	verbose bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "seqdump <file>",
		Short: "Print the fixed size records stored in a binary file",
		Long: `Print the fixed size records stored in a binary file.

Each record is described by a comma separated list of field codes:
  i8 u8 i16 u16 i32 u32 i64 u64 f32 f64   numbers, optionally suffixed be or le
  str:N bytes:N skip:N                    fixed length text, raw bytes, padding

Example:
  seqdump samples.bin --layout "u32le,f64le,str:8" --offset 16 --count 10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(out, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "record layout (required)")
	cmd.Flags().StringVarP(&opts.order, "order", "o", "be", "byte order of fields without a suffix, be or le")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "byte offset of the first record")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of records to print, 0 prints all")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable logging")
	_ = cmd.MarkFlagRequired("layout")

	return cmd
}

func runDump(out io.Writer, file string, opts *dumpOptions) error {
	seqbuffer.EnableLogging(opts.verbose)

	l, err := layout.Parse(opts.layout)
	if err != nil {
		return err
	}

	order, err := seqbuffer.ParseByteOrder(opts.order)
	if err != nil {
		return err
	}

	if l.Size() == 0 {
		return errors.Errorf("layout %v has no size", l)
	}

	if opts.count < 0 {
		return errors.Errorf("count %d, must not be negative", opts.count)
	}

	b, err := seqbuffer.OpenMemoryMappedBuffer(file, false, seqbuffer.WithByteOrder(order))
	if err != nil {
		return err
	}
	defer b.Unmap(false)

	if err = b.Seek(opts.offset); err != nil {
		return err
	}

	size := l.Size()
	for n := 0; opts.count == 0 || n < opts.count; n++ {
		if b.Remaining() < size {
			break
		}

		pos := b.Tell()

		vals, err := l.Decode(b)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(out, "[%d] %s\n", pos, layout.Format(vals)); err != nil {
			return err
		}
	}

	return nil
}
