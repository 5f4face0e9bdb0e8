package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	random "github.com/caio/go-random"
)

const (
	distKey    = "dist"
	nKey       = "n"
	alphaKey   = "alpha"
	countKey   = "count"
	seedKey    = "seed"
	keyedKey   = "keyed"
	summaryKey = "summary"
	debugKey   = "debug"

	envPrefix = "randdist"
)

type config struct {
	Dist    string
	N       int
	Alpha   float64
	Count   int
	Seed    string
	Keyed   bool
	Summary bool
	Debug   bool
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.String(distKey, "irwin-hall", "Distribution to sample: irwin-hall or pareto")
	fs.Int(nKey, random.DefaultIrwinHallN, "Number of summed uniform variates (irwin-hall)")
	fs.Float64(alphaKey, random.DefaultParetoAlpha, "Shape parameter (pareto)")
	fs.Int(countKey, 10, "Number of variates to draw")
	fs.String(seedKey, "", "Seed string. Empty draws a seed from the system entropy source")
	fs.Bool(keyedKey, false, "Use the Salsa20 keyed source for the seed")
	fs.Bool(summaryKey, false, "Print summary statistics instead of the variates")
	fs.Bool(debugKey, false, "Enable debug logging")
	return fs
}

// getViper parses args into a viper instance that also honors
// RANDDIST_* environment variables.
func getViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

func getConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Dist:    v.GetString(distKey),
		N:       v.GetInt(nKey),
		Alpha:   v.GetFloat64(alphaKey),
		Count:   v.GetInt(countKey),
		Seed:    v.GetString(seedKey),
		Keyed:   v.GetBool(keyedKey),
		Summary: v.GetBool(summaryKey),
		Debug:   v.GetBool(debugKey),
	}

	if cfg.Count < 0 {
		return config{}, errors.Errorf("--%s must not be negative, got %d", countKey, cfg.Count)
	}
	if cfg.Keyed && cfg.Seed == "" {
		return config{}, errors.Errorf("--%s requires --%s", keyedKey, seedKey)
	}
	return cfg, nil
}

func (c config) options() []random.Option {
	switch {
	case c.Seed == "":
		return nil
	case c.Keyed:
		return []random.Option{random.KeyString(c.Seed)}
	default:
		return []random.Option{random.SeedString(c.Seed)}
	}
}
