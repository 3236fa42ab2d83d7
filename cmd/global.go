package cmd

import (
	"log"

	"github.com/creativeprojects/imapresp/cfg"
	"github.com/creativeprojects/imapresp/lib"
)

type GlobalFlags struct {
	configFile string
	quiet      bool
	verbose    bool
}

var (
	global GlobalFlags
	config *cfg.Config
)

// debugLogger returns the standard logger in verbose mode only
func debugLogger() lib.Logger {
	if global.verbose {
		return log.Default()
	}
	return nil
}
