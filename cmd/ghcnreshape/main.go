// Command ghcnreshape converts GHCN-Daily .dly files into one spreadsheet per
// station element, each a gap-free daily series.
//
// Usage:
//
//	ghcnreshape -o output -e PRCP,SNOW,SNWD,TMAX,TMIN USC00011084.dly
//	ghcnreshape elements
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
