package cmd

import (
	"github.com/achilleasa/spheretrace/log"
	"github.com/urfave/cli"
)

var logger = log.New("spheretrace")

func setupLogging(ctx *cli.Context) {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			logger.Warningf("%v; using notice", err)
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
