package card

import "fmt"

// Column represents one of the five BINGO columns
type Column int

const (
	ColumnB Column = iota
	ColumnI
	ColumnN
	ColumnG
	ColumnO
)

// String returns the column letter
func (c Column) String() string {
	switch c {
	case ColumnB:
		return "B"
	case ColumnI:
		return "I"
	case ColumnN:
		return "N"
	case ColumnG:
		return "G"
	case ColumnO:
		return "O"
	default:
		return "?"
	}
}

// ParseColumn parses a column letter (case insensitive)
func ParseColumn(s string) (Column, error) {
	switch s {
	case "B", "b":
		return ColumnB, nil
	case "I", "i":
		return ColumnI, nil
	case "N", "n":
		return ColumnN, nil
	case "G", "g":
		return ColumnG, nil
	case "O", "o":
		return ColumnO, nil
	default:
		return 0, fmt.Errorf("invalid column letter %q, allowed letters are B,I,N,G,O", s)
	}
}

// Columns returns the five columns in display order
func Columns() [5]Column {
	return [5]Column{ColumnB, ColumnI, ColumnN, ColumnG, ColumnO}
}

// Rows is the number of rows on a card.
const Rows = 5

// FreeRow is the row index of the free cell in the N column.
const FreeRow = 2

// Card is a single 5x5 bingo card. Cells are indexed by (column, row)
// with row 0 at the top. When the free center is enabled the cell at
// (N, FreeRow) holds no number; all other cells hold distinct integers.
// A Card is immutable once built.
type Card struct {
	cells      [5][Rows]int
	freeCenter bool
}

// New builds a card from a filled cell grid. The grid is copied, so
// callers cannot mutate the card afterwards.
func New(cells [5][Rows]int, freeCenter bool) *Card {
	return &Card{cells: cells, freeCenter: freeCenter}
}

// FreeCenter reports whether the card has a free center cell
func (c *Card) FreeCenter() bool {
	return c.freeCenter
}

// IsFree reports whether (col, row) is the free center cell
func (c *Card) IsFree(col Column, row int) bool {
	return c.freeCenter && col == ColumnN && row == FreeRow
}

// Value returns the number at (col, row). ok is false for the free
// center cell.
func (c *Card) Value(col Column, row int) (value int, ok bool) {
	if c.IsFree(col, row) {
		return 0, false
	}
	return c.cells[col][row], true
}

// ColumnValues returns the numbers in a column top-to-bottom, skipping
// the free center cell.
func (c *Card) ColumnValues(col Column) []int {
	values := make([]int, 0, Rows)
	for row := 0; row < Rows; row++ {
		if v, ok := c.Value(col, row); ok {
			values = append(values, v)
		}
	}
	return values
}

// Numbers returns every number on the card in column-major order
func (c *Card) Numbers() []int {
	numbers := make([]int, 0, 5*Rows)
	for _, col := range Columns() {
		numbers = append(numbers, c.ColumnValues(col)...)
	}
	return numbers
}
