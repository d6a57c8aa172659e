// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// overridden by the linker for release builds:
//   go build -ldflags "-X main.version=..."
var version = "0.1.0"

// Version - the current program version
func Version() string {
	return version
}
