// pidplot - PID Debug Log Plotter
//
// pidplot turns the tab-separated debug logs written by the PID controller and
// its Twiddle tuner into PNG plots saved next to the log.
package main

import (
	"os"

	"github.com/ccollicutt/pidplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
