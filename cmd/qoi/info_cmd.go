package main

import (
	"os"

	"github.com/go-qoi/qoigo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <in.qoi>",
		Short: "Print a QOI stream's header without decoding pixels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			hdr, err := qoi.ParseHeader(data)
			if err != nil {
				return err
			}

			colorspace := "sRGB"
			if hdr.Colorspace == qoi.ColorspaceLinear {
				colorspace = "linear"
			}
			cmd.Printf("width=%d height=%d channels=%d colorspace=%s\n", hdr.Width, hdr.Height, hdr.Channels, colorspace)
			return nil
		},
	}
}
