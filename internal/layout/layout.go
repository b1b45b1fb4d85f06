package layout

import (
	"fmt"

	"github.com/lox/bingosheets/internal/card"
	"github.com/lox/bingosheets/internal/colorscheme"
)

// Sheet pairs one card with its display metadata. Immutable once
// created; ownership transfers to its page slot.
type Sheet struct {
	Card     *card.Card
	Colors   colorscheme.Letters
	FreeText string
}

// Page is an ordered run of sheet slots of fixed capacity. Only the
// last page of a plan may hold fewer sheets than its capacity.
type Page struct {
	Number   int
	Capacity int
	Paper    PaperSize
	Sheets   []Sheet
}

// PageCount returns how many pages are needed for the given sheet count
func PageCount(sheets, perPage int) int {
	return (sheets + perPage - 1) / perPage
}

// PartialLastPage warns that the final page of a plan has empty slots
type PartialLastPage struct {
	Requested int
	Filled    int
	Capacity  int
	Pages     int
}

func (w PartialLastPage) Message() string {
	empty := w.Capacity - w.Filled
	return fmt.Sprintf(
		"Requested %d sheet(s) with %d per page. This creates %d page(s) with %d empty slot(s).",
		w.Requested, w.Capacity, w.Pages, empty,
	)
}

// CheckFit reports a partial-last-page warning for the requested sheet
// count, or nil when every page fills exactly. It needs no cards, so
// front ends can surface the warning before generation starts.
func CheckFit(sheets, perPage int) *PartialLastPage {
	if sheets <= 0 || perPage <= 0 || sheets%perPage == 0 {
		return nil
	}
	pages := PageCount(sheets, perPage)
	return &PartialLastPage{
		Requested: sheets,
		Filled:    sheets - (pages-1)*perPage,
		Capacity:  perPage,
		Pages:     pages,
	}
}

// Plan distributes sheets into pages in order. The warning mirrors
// CheckFit and is nil when the last page is full. The sum of sheets
// across the returned pages always equals len(sheets).
func Plan(sheets []Sheet, perPage int, paper PaperSize) ([]Page, *PartialLastPage) {
	if perPage <= 0 || len(sheets) == 0 {
		return nil, nil
	}
	pages := make([]Page, 0, PageCount(len(sheets), perPage))
	for start := 0; start < len(sheets); start += perPage {
		end := min(start+perPage, len(sheets))
		pages = append(pages, Page{
			Number:   len(pages) + 1,
			Capacity: perPage,
			Paper:    paper,
			Sheets:   sheets[start:end],
		})
	}
	return pages, CheckFit(len(sheets), perPage)
}

// Grid picks the slot arrangement for a page: the column count that
// maximises the smaller of the resulting cell dimensions wins.
func Grid(perPage int, pageW, pageH float64) (cols, rows int) {
	cols, rows = 1, perPage
	best := -1.0
	for c := 1; c <= perPage; c++ {
		r := (perPage + c - 1) / c
		cellW := pageW / float64(c)
		cellH := pageH / float64(r)
		score := min(cellW, cellH)
		if score > best {
			best = score
			cols, rows = c, r
		}
	}
	return cols, rows
}
