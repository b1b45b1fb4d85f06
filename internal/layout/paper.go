package layout

import "fmt"

// PaperSize is the physical page geometry, in PostScript points. It is
// forwarded to the renderer as metadata and never affects which card
// lands on which page.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4     = PaperSize{Name: "a4", Width: 595.28, Height: 841.89}
	Letter = PaperSize{Name: "letter", Width: 612, Height: 792}
)

// ParsePaper parses a paper size name
func ParsePaper(name string) (PaperSize, error) {
	switch name {
	case "a4":
		return A4, nil
	case "letter":
		return Letter, nil
	default:
		return PaperSize{}, fmt.Errorf("invalid paper size %q, expected a4 or letter", name)
	}
}
