package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves the -color flag; "auto" inspects the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(os.Getenv), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, errors.Errorf("unknown color mode %q", s)
	}
}

// trueColorEnv lists variables set only by terminals with 24-bit support
var trueColorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode(getenv func(string) string) ColorMode {
	if ct := getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return ColorModeTrueColor
	}
	for _, k := range trueColorEnv {
		if getenv(k) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Color cube levels for palette indices 16-231
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func nearestCube(v int) int {
	best, bestDist := 0, 256
	for i, c := range cubeValues {
		if d := abs(v - c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rgbTo256 finds the nearest xterm-256 palette index, preferring the gray ramp for near-neutral colors
func rgbTo256(r, g, b uint8) int {
	ri, gi, bi := nearestCube(int(r)), nearestCube(int(g)), nearestCube(int(b))
	cube := 16 + 36*ri + 6*gi + bi

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cube
	}
	switch {
	case gray < 4:
		return 16
	case gray > 243:
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	level := 8 + (grayIdx-232)*10
	grayDist := 3 * abs(gray-level)
	cubeDist := abs(int(r)-cubeValues[ri]) + abs(int(g)-cubeValues[gi]) + abs(int(b)-cubeValues[bi])
	if grayDist < cubeDist {
		return grayIdx
	}
	return cube
}

// toTcell converts c for the given mode
func toTcell(c colorful.Color, mode ColorMode) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(rgbTo256(r, g, b))
}

// Palette holds the scene colors
type Palette struct {
	Background colorful.Color
	Floor      colorful.Color
	Net        colorful.Color
	Player     colorful.Color
	Opponent   colorful.Color
	Ball       colorful.Color
	Text       colorful.Color
	Dim        colorful.Color
	Flash      colorful.Color
}

// DefaultPalette is a Tokyo Night inspired scheme
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex("#1a1b26"),
		Floor:      mustHex("#565f89"),
		Net:        mustHex("#c0caf5"),
		Player:     mustHex("#7aa2f7"),
		Opponent:   mustHex("#f7768e"),
		Ball:       mustHex("#e0af68"),
		Text:       mustHex("#a9b1d6"),
		Dim:        mustHex("#414868"),
		Flash:      mustHex("#ffffff"),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(errors.Wrapf(err, "palette color %s", s))
	}
	return c
}
