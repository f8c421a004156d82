package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Install it
// with COMP_INSTALL=1 ledgerman.
func completion() *complete.Command {
	csv := predict.Files("*.csv")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":  csv,
			"report-file":  predict.Files("*"),
			"session-file": predict.Files("*"),
			"log-level":    predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"menu": {Flags: map[string]complete.Predictor{"no-autoload": predict.Nothing}},
			"tui":  {},
			"view": {},
			"analyze": {Flags: map[string]complete.Predictor{
				"plain": predict.Nothing,
				"width": predict.Something,
			}},
			"report":    {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"diff":      {},
			"customers": {Args: predict.Something},
			"version":   {},
			"help":      {},
			"flags":     {},
			"commands":  {},
		},
	}
}
