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

// Command vframe inspects frame geometry and pixel snapshots.
//
// Usage:
//
//	vframe geometry -W 1920 -H 1080 -s 420 -p 64
//	vframe cpuinfo
//	vframe snapshot synth -W 64 -H 48 -s 422 -t u16 -o frame.vfrm
//	vframe snapshot inspect --verify frame.vfrm
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
