package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/bingosheets/internal/confirm"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Generate a batch of bingo sheets"`
	Preview  PreviewCmd       `cmd:"" help:"Generate and display a single card"`
	Tui      TuiCmd           `cmd:"" help:"Interactive generator form"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bingosheets"),
		kong.Description("Generate printable bingo sheets (A4/Letter)."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	if err != nil {
		if errors.Is(err, confirm.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			ctx.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(2)
	}
}
