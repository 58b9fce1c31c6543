// tnt is the command line tool to manage tontine ledgers.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tontine/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must be
// kept in sync with cmd.Register.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"add-member":     {},
		"members":        {},
		"rm-member":      {},
		"create-tontine": {},
		"tontines":       {},
		"rounds":         {},
		"suspend":        {},
		"resume":         {},
		"rm-tontine":     {},
		"pay":            {},
		"payout":         {},
		"payments":       {},
		"receipt":        {},
		"rm-payment":     {},
		"summary":        {},
		"monthly":        {},
		"export":         {},
		"import":         {},
		"topic":          {},
		"assist":         {},
	},
	Flags: map[string]complete.Predictor{
		"data":    predict.Dirs("*"),
		"remote":  predict.Nothing,
		"api-key": predict.Nothing,
	},
}

func main() {
	// In completion mode this prints the candidates and exits.
	completion.Complete("tnt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
