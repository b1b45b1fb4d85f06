package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/bingosheets/cmd/bingosheets/shared"
	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/generate"
	"github.com/lox/bingosheets/internal/layout"
	"github.com/lox/bingosheets/internal/randutil"
	"github.com/lox/bingosheets/internal/render"
)

// PreviewCmd generates a single card and renders it to the terminal,
// for quick iteration on range and color settings.
type PreviewCmd struct {
	MinNumber          int    `default:"1" help:"Lowest number in the bingo pool"`
	MaxNumber          int    `default:"75" help:"Highest number in the bingo pool"`
	Distribution       string `default:"segmented" enum:"segmented,fully-random" help:"Number distribution policy"`
	LetterColorMode    string `default:"black" enum:"black,random,custom" help:"BINGO letter coloring mode"`
	CustomLetterColors string `help:"Custom colors, format B:#RRGGBB,..."`
	FreeCenter         bool   `default:"true" negatable:"" help:"Leave the center cell free"`
	FreeCenterText     string `default:"FREE" help:"Text shown in the free center cell"`
	Seed               *int64 `help:"Optional random seed for repeatable output"`
	Debug              bool   `help:"Enable debug logging"`
}

func (c *PreviewCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	mode, err := generate.ParseMode(c.Distribution)
	if err != nil {
		return err
	}
	colorMode, err := colorscheme.ParseMode(c.LetterColorMode)
	if err != nil {
		return err
	}

	cfg := generate.Config{
		Mode:           mode,
		Range:          generate.Range{Min: c.MinNumber, Max: c.MaxNumber},
		Sheets:         1,
		SheetsPerPage:  1,
		FreeCenter:     c.FreeCenter,
		FreeCenterText: c.FreeCenterText,
	}
	if _, err := generate.Validate(cfg); err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := randutil.New(seed)
	logger.Debug("previewing card", "mode", mode, "range", cfg.Range, "seed", seed)

	colors, err := colorscheme.Resolve(colorscheme.Config{
		Mode:       colorMode,
		CustomSpec: c.CustomLetterColors,
	}, rng)
	if err != nil {
		return err
	}

	bingoCard, err := generate.NewFactory(cfg, rng).Build()
	if err != nil {
		return err
	}

	sheet := layout.Sheet{Card: bingoCard, Colors: colors, FreeText: c.FreeCenterText}
	fmt.Println(render.NewTerminal(os.Stdout).RenderSheet(sheet))
	return nil
}
