// Copyright 2025 go-vframe Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vframe/vframe"
	"github.com/ajroetker/go-vframe/vframe/contrib/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Create and inspect frame snapshots",
	}
	cmd.AddCommand(newSynthCmd(), newInspectCmd())
	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		ff  frameFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a padded test-pattern frame to a snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, pt, err := ff.geometry()
			if err != nil {
				return err
			}
			if err := synthFile(out, g, ff.width, ff.height, pt); err != nil {
				return err
			}
			_, err = printer().Fprintf(cmd.OutOrStdout(), "wrote %s (%v %v, %dx%d)\n", out, g.Sampling, pt, ff.width, ff.height)
			return err
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "snapshot file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func synthFile(path string, g vframe.Geometry, w, h int, pt vframe.PixelType) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	switch pt {
	case vframe.U8:
		return snapshot.Write(fh, synthFrame[uint8](g, w, h, 0xff))
	case vframe.U16:
		return snapshot.Write(fh, synthFrame[uint16](g, w, h, 0x3ff))
	}
	return fmt.Errorf("unsupported pixel type %v", pt)
}

// synthFrame draws a diagonal ramp in each plane's visible area and pads it.
func synthFrame[T vframe.Pixel](g vframe.Geometry, w, h int, maxValue uint32) *vframe.Frame[T] {
	f := vframe.NewFrameFromGeometry[T](g)
	for i, p := range f.Planes {
		for y := range p.Cfg.Height {
			row := p.Row(y)
			for x := range row {
				row[x] = vframe.CastPixel[T](uint32(x*7+y*3+i*64) % (maxValue + 1))
			}
		}
	}
	f.Pad(w, h)
	return f
}

func newInspectCmd() *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the geometry stored in a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectFile(cmd.OutOrStdout(), args[0], verify)
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "decode every plane, not just the header")
	return cmd
}

func inspectFile(w io.Writer, path string, verify bool) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	hdr, err := snapshot.ReadHeader(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%s: snapshot version %d\n", path, hdr.Version)
	if err := writeGeometry(w, hdr.Geometry, hdr.PixelType); err != nil {
		return err
	}
	if !verify {
		return nil
	}

	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return err
	}
	switch hdr.PixelType {
	case vframe.U8:
		_, err = snapshot.Read[uint8](fh)
	case vframe.U16:
		_, err = snapshot.Read[uint16](fh)
	default:
		err = errors.New("unsupported pixel type")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = fmt.Fprintln(w, "all planes decoded")
	return err
}
