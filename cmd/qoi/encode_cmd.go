package main

import (
	"os"

	"github.com/go-qoi/qoigo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var width, height uint32
	var channels, colorspace uint8
	var allowZeroDims bool

	cmd := &cobra.Command{
		Use:   "encode <raw-file> <out.qoi>",
		Short: "Encode a tightly packed raw pixel buffer into a QOI stream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pixels, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			policy := qoi.RejectZeroDimensions
			if allowZeroDims {
				policy = qoi.AllowZeroDimensions
			}
			out, err := qoi.Encode(pixels, width, height, qoi.EncodeOptions{
				Channels:            channels,
				Colorspace:          colorspace,
				ZeroDimensionPolicy: policy,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", args[1])
			}
			cmd.PrintErrf("encoded %s -> %s (%d bytes)\n", args[0], args[1], len(out))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint32Var(&width, "width", 0, "image width in pixels (required)")
	flags.Uint32Var(&height, "height", 0, "image height in pixels (required)")
	flags.Uint8Var(&channels, "channels", 4, "pixel channel count: 3 (RGB) or 4 (RGBA)")
	flags.Uint8Var(&colorspace, "colorspace", qoi.ColorspaceSRGB, "colorspace byte: 0 (sRGB) or 1 (linear)")
	flags.BoolVar(&allowZeroDims, "allow-zero-dimensions", false, "permit width or height of 0")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}
