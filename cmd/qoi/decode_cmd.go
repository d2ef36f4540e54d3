package main

import (
	"os"

	"github.com/go-qoi/qoigo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var allowZeroDims bool

	cmd := &cobra.Command{
		Use:   "decode <in.qoi> <raw-file>",
		Short: "Decode a QOI stream into a tightly packed raw pixel buffer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			policy := qoi.RejectZeroDimensions
			if allowZeroDims {
				policy = qoi.AllowZeroDimensions
			}
			hdr, pixels, err := qoi.Decode(data, qoi.DecodeOptions{ZeroDimensionPolicy: policy})
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], pixels, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", args[1])
			}
			cmd.PrintErrf("decoded %s -> %s (%dx%d, %d channels)\n", args[0], args[1], hdr.Width, hdr.Height, hdr.Channels)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowZeroDims, "allow-zero-dimensions", false, "permit width or height of 0")
	return cmd
}
