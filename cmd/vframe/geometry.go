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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-vframe/vframe"
)

var planeNames = [3]string{"luma", "cb", "cr"}

func newGeometryCmd() *cobra.Command {
	var ff frameFlags
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the plane layout for a frame format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, pt, err := ff.geometry()
			if err != nil {
				return err
			}
			return writeGeometry(cmd.OutOrStdout(), g, pt)
		},
	}
	ff.register(cmd)
	return cmd
}

func (ff *frameFlags) geometry() (vframe.Geometry, vframe.PixelType, error) {
	cs, err := vframe.ParseChromaSampling(ff.sampling)
	if err != nil {
		return vframe.Geometry{}, 0, err
	}
	pt, err := vframe.ParsePixelType(ff.pixel)
	if err != nil {
		return vframe.Geometry{}, 0, err
	}
	if ff.width < 0 || ff.height < 0 || ff.padding < 0 {
		return vframe.Geometry{}, 0, fmt.Errorf("dimensions must be non-negative: %dx%d padding %d", ff.width, ff.height, ff.padding)
	}
	return vframe.ComputeGeometry(ff.width, ff.height, cs, ff.padding), pt, nil
}

type planeRow struct {
	name string
	geom vframe.PlaneGeometry
	cfg  vframe.PlaneConfig
}

func planeRows(g vframe.Geometry, pt vframe.PixelType) []planeRow {
	title := cases.Title(language.English)
	rows := lo.Map(g.Planes[:], func(pg vframe.PlaneGeometry, i int) planeRow {
		return planeRow{name: title.String(planeNames[i]), geom: pg, cfg: pg.Config(pt.Bytes())}
	})
	if !g.Sampling.HasChroma() {
		rows = rows[:1]
	}
	return rows
}

func writeGeometry(w io.Writer, g vframe.Geometry, pt vframe.PixelType) error {
	p := printer()
	rows := planeRows(g, pt)
	total := lo.SumBy(rows, func(r planeRow) int { return r.cfg.Len() * pt.Bytes() })

	p.Fprintf(w, "sampling %v, %v samples, rows aligned to %d bytes\n", g.Sampling, pt, vframe.DataAlignment())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "plane\twidth\theight\tdec\tpad\tstride\trows\tbytes\t")
	for _, r := range rows {
		p.Fprintf(tw, "%s\t%d\t%d\t%d,%d\t%d,%d\t%d\t%d\t%d\t\n",
			r.name, r.geom.Width, r.geom.Height, r.geom.XDec, r.geom.YDec,
			r.geom.XPad, r.geom.YPad, r.cfg.Stride, r.cfg.AllocHeight, r.cfg.Len()*pt.Bytes())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "total %d bytes\n", total)
	return err
}
