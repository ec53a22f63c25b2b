package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/regexer/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	if err := runner.Run(opts); err != nil {
		gologger.Fatal().Msgf("regexer: %s", err)
	}
}
