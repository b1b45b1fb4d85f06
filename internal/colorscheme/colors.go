package colorscheme

import (
	"fmt"
	rand "math/rand/v2"
	"regexp"
	"strings"

	"github.com/lox/bingosheets/internal/card"
)

// Mode selects how the BINGO header letters are colored
type Mode string

const (
	Black  Mode = "black"
	Random Mode = "random"
	Custom Mode = "custom"
)

// ParseMode parses a letter color mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Black, Random, Custom:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid letter color mode %q, expected black, random or custom", s)
	}
}

// Config is the user-facing color configuration. CustomSpec is only
// consulted in Custom mode.
type Config struct {
	Mode       Mode
	CustomSpec string
}

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Letters maps each column letter to its display color
type Letters map[card.Column]RGB

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParseHex parses a #RRGGBB color string
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, fmt.Errorf("invalid color %q, expected #RRGGBB", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Preset returns the colorful base palette used as the starting point
// for random mode.
func Preset() Letters {
	return Letters{
		card.ColumnB: {R: 0x1F, G: 0x77, B: 0xB4},
		card.ColumnI: {R: 0xD6, G: 0x27, B: 0x28},
		card.ColumnN: {R: 0x2C, G: 0xA0, B: 0x2C},
		card.ColumnG: {R: 0xFF, G: 0xBF, B: 0x00},
		card.ColumnO: {R: 0x94, G: 0x67, B: 0xBD},
	}
}

// ParseCustom parses a custom color spec of the form
// "B:#1F77B4,I:#D62728,N:#2CA02C,G:#FFBF00,O:#9467BD". All five
// letters are required.
func ParseCustom(spec string) (Letters, error) {
	if spec == "" {
		return nil, fmt.Errorf("custom letter colors are required when letter color mode is custom")
	}
	letters := make(Letters, 5)
	for _, item := range strings.Split(spec, ",") {
		key, raw, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("invalid custom color entry %q, expected KEY:#RRGGBB", item)
		}
		col, err := card.ParseColumn(strings.TrimSpace(key))
		if err != nil {
			return nil, err
		}
		c, err := ParseHex(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		letters[col] = c
	}
	var missing []string
	for _, col := range card.Columns() {
		if _, ok := letters[col]; !ok {
			missing = append(missing, col.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing custom colors for: %s", strings.Join(missing, ", "))
	}
	return letters, nil
}

// randomLetters draws one color per letter, with components kept in
// [40,220] so letters stay readable when printed.
func randomLetters(rng *rand.Rand) Letters {
	letters := make(Letters, 5)
	for _, col := range card.Columns() {
		letters[col] = RGB{
			R: uint8(40 + rng.IntN(181)),
			G: uint8(40 + rng.IntN(181)),
			B: uint8(40 + rng.IntN(181)),
		}
	}
	return letters
}

// Resolve turns the color configuration into a concrete per-column
// mapping. Random mode consumes the run's random source, so resolution
// order relative to card sampling is part of a seed's contract.
func Resolve(cfg Config, rng *rand.Rand) (Letters, error) {
	switch cfg.Mode {
	case Black:
		letters := make(Letters, 5)
		for _, col := range card.Columns() {
			letters[col] = RGB{}
		}
		return letters, nil
	case Random:
		return randomLetters(rng), nil
	case Custom:
		return ParseCustom(cfg.CustomSpec)
	default:
		return nil, fmt.Errorf("unknown letter color mode %q", cfg.Mode)
	}
}
