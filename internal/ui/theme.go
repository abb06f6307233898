package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/triqui/internal/apperror"
)

// Theme represents the colour scheme of the screen.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// ParseTheme - accepts "light" or "dark", case insensitive.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("%w: %q", apperror.ErrUnknownTheme, name)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the dark theme is active.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Palette holds the styles used for one frame.
type Palette struct {
	Background tcell.Style
	Title      tcell.Style
	Square     tcell.Style
	Border     tcell.Style
	Status     tcell.Style
	Overlay    tcell.Style
	Modal      tcell.Style
	Button     tcell.Style
	Link       tcell.Style
	Cursor     tcell.Style
}

var (
	colorDark   = tcell.GetColor("#333333")
	colorLight  = tcell.GetColor("#f5f5f5")
	colorWhite  = tcell.GetColor("#ffffff")
	colorBorder = tcell.GetColor("#cccccc")
	colorLink   = tcell.GetColor("#1e90ff")
)

// palettes is the lookup table resolved once per render.
var palettes = map[Theme]Palette{
	ThemeLight: {
		Background: tcell.StyleDefault.Background(colorLight).Foreground(colorDark),
		Title:      tcell.StyleDefault.Background(colorLight).Foreground(colorDark).Bold(true),
		Square:     tcell.StyleDefault.Background(colorWhite).Foreground(colorDark).Bold(true),
		Border:     tcell.StyleDefault.Background(colorLight).Foreground(colorBorder),
		Status:     tcell.StyleDefault.Background(colorLight).Foreground(colorDark),
		// rgba(0, 0, 0, 0.5) over the light background
		Overlay: tcell.StyleDefault.Background(tcell.GetColor("#7b7b7b")).Foreground(colorDark),
		Modal:   tcell.StyleDefault.Background(colorWhite).Foreground(colorDark).Bold(true),
		Button:  tcell.StyleDefault.Background(colorDark).Foreground(colorWhite).Bold(true),
		Link:    tcell.StyleDefault.Background(colorLight).Foreground(colorLink).Underline(true),
		Cursor:  tcell.StyleDefault.Background(colorBorder).Foreground(colorDark).Bold(true),
	},
	ThemeDark: {
		Background: tcell.StyleDefault.Background(colorDark).Foreground(colorWhite),
		Title:      tcell.StyleDefault.Background(colorDark).Foreground(colorWhite).Bold(true),
		Square:     tcell.StyleDefault.Background(colorDark).Foreground(colorWhite).Bold(true),
		Border:     tcell.StyleDefault.Background(colorDark).Foreground(colorWhite),
		Status:     tcell.StyleDefault.Background(colorDark).Foreground(colorWhite),
		// rgba(255, 255, 255, 0.5) over the dark background
		Overlay: tcell.StyleDefault.Background(tcell.GetColor("#999999")).Foreground(colorWhite),
		Modal:   tcell.StyleDefault.Background(colorDark).Foreground(colorWhite).Bold(true),
		Button:  tcell.StyleDefault.Background(colorWhite).Foreground(colorDark).Bold(true),
		Link:    tcell.StyleDefault.Background(colorDark).Foreground(colorLink).Underline(true),
		Cursor:  tcell.StyleDefault.Background(tcell.GetColor("#555555")).Foreground(colorWhite).Bold(true),
	},
}

// PaletteFor returns the styles of a theme.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}
