package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the CLI surface for shell completion.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"data":   predict.Dirs("*"),
		},
	}
}
