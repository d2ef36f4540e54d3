// Command qoi is a thin CLI front-end over the qoi package: it moves bytes
// between files and the core's buffer API and never reimplements chunk
// logic itself.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
