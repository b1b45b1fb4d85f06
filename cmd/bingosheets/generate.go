package main

import (
	"fmt"

	"github.com/lox/bingosheets/cmd/bingosheets/shared"
	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/config"
	"github.com/lox/bingosheets/internal/confirm"
	"github.com/lox/bingosheets/internal/generate"
	"github.com/lox/bingosheets/internal/layout"
	"github.com/lox/bingosheets/internal/render"
)

// GenerateCmd contains the full batch generation configuration. The
// defaults mirror the stock config file values.
type GenerateCmd struct {
	Output             string `default:"bingo_sheets.txt" help:"Output file path, - for stdout"`
	Sheets             int    `default:"4" help:"Total number of bingo sheets/cards to generate"`
	SheetsPerPage      int    `default:"4" help:"How many sheets/cards to place on each paper page"`
	PaperSize          string `default:"a4" enum:"a4,letter" help:"Paper size for the output"`
	MinNumber          int    `default:"1" help:"Lowest number in the bingo pool"`
	MaxNumber          int    `default:"75" help:"Highest number in the bingo pool"`
	Distribution       string `default:"segmented" enum:"segmented,fully-random" help:"'segmented': each B/I/N/G/O column maps to a numeric range segment. 'fully-random': any number can appear in any column."`
	LetterColorMode    string `default:"black" enum:"black,random,custom" help:"BINGO letter coloring mode"`
	CustomLetterColors string `help:"Required with --letter-color-mode custom. Format: B:#1F77B4,I:#D62728,N:#2CA02C,G:#FFBF00,O:#9467BD"`
	FreeCenter         bool   `default:"true" negatable:"" help:"Leave the center cell free"`
	FreeCenterText     string `default:"FREE" help:"Text shown in the free center cell"`
	Seed               *int64 `help:"Optional random seed for repeatable output"`
	AssumeYes          bool   `help:"Skip interactive warning confirmations"`
	Config             string `type:"path" help:"Optional HCL config file supplying defaults"`
	Debug              bool   `help:"Enable debug logging"`
}

func (c *GenerateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg := config.Default()
	if c.Config != "" {
		var err error
		cfg, err = config.Load(c.Config)
		if err != nil {
			return err
		}
	}
	c.overlay(cfg)

	mode, err := generate.ParseMode(cfg.Distribution)
	if err != nil {
		return err
	}
	colorMode, err := colorscheme.ParseMode(cfg.LetterColorMode)
	if err != nil {
		return err
	}
	paper, err := layout.ParsePaper(cfg.PaperSize)
	if err != nil {
		return err
	}

	rc := generate.RunConfig{
		Distribution: generate.Config{
			Mode:           mode,
			Range:          generate.Range{Min: *cfg.MinNumber, Max: cfg.MaxNumber},
			Sheets:         cfg.Sheets,
			SheetsPerPage:  cfg.SheetsPerPage,
			FreeCenter:     *cfg.FreeCenter,
			FreeCenterText: cfg.FreeCenterText,
		},
		Paper: paper,
		Colors: colorscheme.Config{
			Mode:       colorMode,
			CustomSpec: cfg.CustomLetterColors,
		},
		Seed: cfg.Seed,
	}

	gate := confirm.New(cfg.AssumeYes, logger)
	result, err := generate.Run(rc, gate, logger)
	if err != nil {
		return err
	}
	if result.Aborted {
		return confirm.ErrAborted
	}
	if err := render.WritePlan(cfg.Output, result.Pages); err != nil {
		return err
	}
	if cfg.Output != "-" {
		fmt.Printf("Generated: %s\n", cfg.Output)
	}
	logger.Debug("generation finished", "seed", result.Seed, "pages", len(result.Pages))
	return nil
}

// overlay applies CLI flags over the file-supplied configuration. Flags
// left at their stock default defer to the file.
func (c *GenerateCmd) overlay(cfg *config.File) {
	def := config.Default()
	if c.Output != def.Output {
		cfg.Output = c.Output
	}
	if c.Sheets != def.Sheets {
		cfg.Sheets = c.Sheets
	}
	if c.SheetsPerPage != def.SheetsPerPage {
		cfg.SheetsPerPage = c.SheetsPerPage
	}
	if c.PaperSize != def.PaperSize {
		cfg.PaperSize = c.PaperSize
	}
	if c.MinNumber != *def.MinNumber {
		cfg.MinNumber = &c.MinNumber
	}
	if c.MaxNumber != def.MaxNumber {
		cfg.MaxNumber = c.MaxNumber
	}
	if c.Distribution != def.Distribution {
		cfg.Distribution = c.Distribution
	}
	if c.LetterColorMode != def.LetterColorMode {
		cfg.LetterColorMode = c.LetterColorMode
	}
	if c.CustomLetterColors != "" {
		cfg.CustomLetterColors = c.CustomLetterColors
	}
	if c.FreeCenter != *def.FreeCenter {
		cfg.FreeCenter = &c.FreeCenter
	}
	if c.FreeCenterText != def.FreeCenterText {
		cfg.FreeCenterText = c.FreeCenterText
	}
	if c.Seed != nil {
		cfg.Seed = c.Seed
	}
	if c.AssumeYes {
		cfg.AssumeYes = true
	}
}
