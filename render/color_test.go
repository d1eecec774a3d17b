package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"colorterm", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"empty", map[string]string{}, ColorMode256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColorMode(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"256": ColorMode256, "truecolor": ColorModeTrueColor, "24bit": ColorModeTrueColor} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseColorMode("16"); err == nil {
		t.Error("Expected error for unsupported mode")
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{255, 0, 0, 196},
		{0, 0, 255, 21},
		{128, 128, 128, 244},
	}
	for _, tt := range tests {
		if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("rgbTo256(%d,%d,%d): expected %d, got %d", tt.r, tt.g, tt.b, tt.want, got)
		}
	}
}

func TestToTcellModes(t *testing.T) {
	c := colorful.Color{R: 1, G: 0, B: 0}
	if got := toTcell(c, ColorModeTrueColor); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected RGB red, got %v", got)
	}
	if got := toTcell(c, ColorMode256); got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette 196, got %v", got)
	}
}
