package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#ffff00",
		Warning:     "#ff00ff",
		Border:      "#ff0000",
	}
}

func TestNewPalette_SessionShades(t *testing.T) {
	palette := NewPalette(darkTheme())

	if palette.Light() {
		t.Fatal("expected dark palette")
	}
	if got, want := palette.SessionBg("#112233"), lipgloss.Color(darkenColor("#112233")); got != want {
		t.Fatalf("SessionBg = %q, want %q", got, want)
	}
	if got, want := palette.SpanBg("#445566"), lipgloss.Color(muteColor("#445566")); got != want {
		t.Fatalf("SpanBg = %q, want %q", got, want)
	}
	if got := darkenColor("#ff0000"); got != "#7f2828" {
		t.Fatalf("darkenColor(#ff0000) = %q, want #7f2828", got)
	}
}

func TestNewPalette_LightThemeBlendsTowardsBackground(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Today:       "#c97b00",
		Warning:     "#c2410c",
		Border:      "#2f6feb",
	}

	palette := NewPalette(base)
	if !palette.Light() {
		t.Fatal("expected light palette")
	}
	session := "#1d8a8a"
	if relativeLuminance(string(palette.SessionBg(session))) <= relativeLuminance(session) {
		t.Fatalf("SessionBg luminance = %f, want greater than %s", relativeLuminance(string(palette.SessionBg(session))), session)
	}
	if relativeLuminance(string(palette.SpanBg(session))) <= relativeLuminance(string(palette.SessionBg(session))) {
		t.Fatal("SpanBg should be lighter than SessionBg on a light theme")
	}
}

func TestNewPalette_NilUsesDefault(t *testing.T) {
	palette := NewPalette(nil)
	mocha, err := Load(Default)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", Default, err)
	}
	if palette.Bg != lipgloss.Color(mocha.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, mocha.Bg)
	}
}

func TestTextOn(t *testing.T) {
	palette := NewPalette(darkTheme())

	tests := []struct {
		bg   string
		want lipgloss.Color
	}{
		{bg: "#000000", want: "#ffffff"},
		{bg: "#7f2828", want: "#ffffff"},
		{bg: "#ffff66", want: "#101010"},
		{bg: "#f0f0f0", want: "#101010"},
	}
	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			if got := palette.TextOn(lipgloss.Color(tt.bg)); got != tt.want {
				t.Errorf("TextOn(%s) = %q, want %q", tt.bg, got, tt.want)
			}
		})
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 2, "#ffffff"},
		{"#ff0000", "#0000ff", 0.5, "#7f007f"},
		{"red", "#ffffff", 0.5, "red"},
	}
	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}
