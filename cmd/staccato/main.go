// SPDX-License-Identifier: MIT

// Command staccato extracts expressive information from monophonic audio
// recordings: note onsets and note envelope segments.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
