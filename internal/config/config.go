package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the on-disk HCL configuration for the generate command. All
// fields are optional; missing values fall back to the stock defaults.
type File struct {
	Output             string `hcl:"output,optional"`
	Sheets             int    `hcl:"sheets,optional"`
	SheetsPerPage      int    `hcl:"sheets_per_page,optional"`
	PaperSize          string `hcl:"paper_size,optional"`
	MinNumber          *int   `hcl:"min_number,optional"`
	MaxNumber          int    `hcl:"max_number,optional"`
	Distribution       string `hcl:"distribution,optional"`
	LetterColorMode    string `hcl:"letter_color_mode,optional"`
	CustomLetterColors string `hcl:"custom_letter_colors,optional"`
	FreeCenter         *bool  `hcl:"free_center,optional"`
	FreeCenterText     string `hcl:"free_center_text,optional"`
	Seed               *int64 `hcl:"seed,optional"`
	AssumeYes          bool   `hcl:"assume_yes,optional"`
}

// Default returns the stock configuration, matching the CLI defaults
func Default() *File {
	minNumber := 1
	freeCenter := true
	return &File{
		Output:          "bingo_sheets.txt",
		Sheets:          4,
		SheetsPerPage:   4,
		PaperSize:       "a4",
		MinNumber:       &minNumber,
		MaxNumber:       75,
		Distribution:    "segmented",
		LetterColorMode: "black",
		FreeCenter:      &freeCenter,
		FreeCenterText:  "FREE",
	}
}

// Load reads an HCL config file. A missing file yields the defaults;
// fields left unset in the file also fall back to the defaults.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *File) {
	def := Default()
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.Sheets == 0 {
		cfg.Sheets = def.Sheets
	}
	if cfg.SheetsPerPage == 0 {
		cfg.SheetsPerPage = def.SheetsPerPage
	}
	if cfg.PaperSize == "" {
		cfg.PaperSize = def.PaperSize
	}
	if cfg.MinNumber == nil {
		cfg.MinNumber = def.MinNumber
	}
	if cfg.MaxNumber == 0 {
		cfg.MaxNumber = def.MaxNumber
	}
	if cfg.Distribution == "" {
		cfg.Distribution = def.Distribution
	}
	if cfg.LetterColorMode == "" {
		cfg.LetterColorMode = def.LetterColorMode
	}
	if cfg.FreeCenter == nil {
		cfg.FreeCenter = def.FreeCenter
	}
	if cfg.FreeCenterText == "" {
		cfg.FreeCenterText = def.FreeCenterText
	}
}
