package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

// canvas is the part of Screen the renderer draws on.
type canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// View is everything drawn in one frame.
type View struct {
	State     usecase.GameState
	Theme     Theme
	ModalOpen bool
	Cursor    int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(c canvas) *Renderer {
	return &Renderer{canvas: c}
}

// StatusText describes the round for the status line.
func StatusText(state usecase.GameState) string {
	if state.Outcome.IsTerminal() {
		return ResultText(state.Outcome)
	}
	return fmt.Sprintf("Player %s's turn", state.CurrentPlayer)
}

// ResultText is the headline of the result dialog.
func ResultText(outcome entity.Outcome) string {
	if outcome.Kind == entity.OutcomeDraw {
		return "Draw"
	}
	return fmt.Sprintf("Winner: %s", outcome.Winner)
}

// Render draws a full frame and returns the layout it used.
func (r *Renderer) Render(view View) Layout {
	width, height := r.canvas.Size()
	layout := NewLayout(width, height)
	palette := PaletteFor(view.Theme)

	r.canvas.Clear()
	r.fill(Rect{W: width, H: height}, palette.Background)

	r.text(layout.Title.X, layout.Title.Y, titleText, palette.Title)
	r.drawGrid(layout, view, palette)
	r.textCentered(layout.Status, StatusText(view.State), palette.Status)
	r.text(layout.Toggle.X, layout.Toggle.Y, toggleLabel(view.Theme), palette.Status)
	r.text(layout.Link.X, layout.Link.Y, linkText, palette.Link)

	if view.ModalOpen {
		r.drawModal(layout, view, palette)
	}

	r.canvas.Show()

	return layout
}

func (r *Renderer) drawGrid(layout Layout, view View, palette Palette) {
	g := layout.Grid

	// grid lines
	for y := g.Y; y < g.Y+g.H; y++ {
		for x := g.X; x < g.X+g.W; x++ {
			r.canvas.SetContent(x, y, gridRune(x-g.X, y-g.Y), palette.Border)
		}
	}

	for cell := 0; cell < entity.BoardSize; cell++ {
		rect := layout.CellRect(cell)
		style := palette.Square
		if !view.ModalOpen && cell == view.Cursor {
			style = palette.Cursor
		}

		r.fill(rect, style)

		if mark := view.State.Board[cell]; mark != entity.Empty {
			r.canvas.SetContent(rect.X+rect.W/2, rect.Y+rect.H/2, []rune(string(mark))[0], style)
		}
	}
}

func (r *Renderer) drawModal(layout Layout, view View, palette Palette) {
	r.fill(Rect{W: layout.Width, H: layout.Height}, palette.Overlay)
	r.fill(layout.Modal, palette.Modal)
	r.textCentered(layout.ModalText, ResultText(view.State.Outcome), palette.Modal)
	r.text(layout.ResetButton.X, layout.ResetButton.Y, buttonText, palette.Button)
}

func (r *Renderer) fill(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.canvas.SetContent(x, y, ' ', style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}

func (r *Renderer) textCentered(rect Rect, s string, style tcell.Style) {
	runes := []rune(s)
	x := rect.X + max(0, (rect.W-len(runes))/2)
	r.text(x, rect.Y, s, style)
}

// gridRune picks the box drawing rune at a position relative to the grid origin.
func gridRune(x, y int) rune {
	onV := x%(cellWidth+1) == 0
	onH := y%(cellHeight+1) == 0

	switch {
	case onV && onH:
		return '+'
	case onV:
		return '|'
	case onH:
		return '-'
	default:
		return ' '
	}
}
