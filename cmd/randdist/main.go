// Command randdist draws variates from the distributions of
// github.com/caio/go-random and prints them, one per line, or a
// summary of them.
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"
)

const progName = "randdist"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	fs := buildFlagSet()
	v, err := getViper(fs, os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		os.Exit(2)
	}

	cfg, err := getConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		os.Exit(2)
	}

	if cfg.Debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
