// Command macgrid inspects and audits staggered grids described in TOML.
//
//	macgrid describe --config grid.toml
//	macgrid verify --cells 64,64,32 --dx 0.25 --max-violations 20
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("macgrid: %v", err)
		os.Exit(1)
	}
}
