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
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// frameFlags are the geometry flags shared by several subcommands.
type frameFlags struct {
	width    int
	height   int
	sampling string
	padding  int
	pixel    string
}

func (ff *frameFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&ff.width, "width", "W", 1920, "luma width in samples")
	f.IntVarP(&ff.height, "height", "H", 1080, "luma height in samples")
	f.StringVarP(&ff.sampling, "sampling", "s", "420", "chroma sampling (420, 422, 444, 400)")
	f.IntVarP(&ff.padding, "padding", "p", 0, "luma padding in samples")
	f.StringVarP(&ff.pixel, "pixel", "t", "u8", "sample type (u8, u16)")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vframe",
		Short:         "Frame geometry and snapshot tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGeometryCmd(), newCPUInfoCmd(), newSnapshotCmd())
	return root
}

// printer formats numbers with digit grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
