// Copyright 2026 The gVisor Authors.
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

// go_fixedlayout is a code generation utility that attests types have a fixed
// memory layout.
//
// This binary is typically run as part of the build process, e.g. from a
// go:generate directive:
//
//	//go:generate go run gvisor.dev/fixedlayout/tools/go_fixedlayout generate -output=foo_fixedlayout_autogen.go foo.go
package main

import (
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/cli"
)

func main() {
	cli.Main()
}
