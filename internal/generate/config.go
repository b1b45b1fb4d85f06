package generate

import "github.com/lox/bingosheets/internal/card"

// Config describes the distribution settings for one generation run.
// It is constructed once from user input and never mutated.
type Config struct {
	Mode          Mode
	Range         Range
	Sheets        int
	SheetsPerPage int

	// FreeCenter leaves the center N cell without a number. When it is
	// off all 25 cells are drawn.
	FreeCenter bool
	// FreeCenterText is the label shown in the free cell.
	FreeCenterText string
}

// CellsPerCard returns how many numbers a single card needs
func (c Config) CellsPerCard() int {
	if c.FreeCenter {
		return 24
	}
	return 25
}

// columnNeed returns how many numbers a column needs.
func (c Config) columnNeed(col card.Column) int {
	if c.FreeCenter && col == card.ColumnN {
		return card.Rows - 1
	}
	return card.Rows
}
