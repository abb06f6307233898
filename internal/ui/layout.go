package ui

import "github.com/rocketscienceinc/triqui/internal/entity"

const (
	cellWidth  = 7
	cellHeight = 3

	gridWidth  = 3*cellWidth + 4
	gridHeight = 3*cellHeight + 4

	modalWidth  = 28
	modalHeight = 7

	// title, gap, grid, gap, status, gap, toggle, link
	contentHeight = 1 + 1 + gridHeight + 1 + 1 + 1 + 1 + 1
)

const (
	titleText  = "Triqui X O"
	linkText   = "Download the app"
	buttonText = "[ Reset game ]"
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TargetKind identifies what a click landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetResetButton
	TargetThemeToggle
	TargetDownloadLink
)

// Target is the result of hit-testing a screen position.
type Target struct {
	Kind TargetKind
	Cell int
}

// Layout places every element for a given screen size.
type Layout struct {
	Width, Height int

	Title  Rect
	Grid   Rect
	Status Rect
	Toggle Rect
	Link   Rect

	Modal       Rect
	ModalText   Rect
	ResetButton Rect
}

// NewLayout centers the content on a screen of the given size.
func NewLayout(width, height int) Layout {
	top := max(0, (height-contentHeight)/2)

	l := Layout{Width: width, Height: height}

	l.Title = centered(width, top, len(titleText))
	l.Grid = Rect{X: max(0, (width-gridWidth)/2), Y: top + 2, W: gridWidth, H: gridHeight}
	l.Status = Rect{X: 0, Y: l.Grid.Y + gridHeight + 1, W: width, H: 1}
	l.Toggle = centered(width, l.Status.Y+2, len(toggleLabel(ThemeDark)))
	l.Link = centered(width, l.Toggle.Y+1, len(linkText))

	l.Modal = Rect{
		X: max(0, (width-modalWidth)/2),
		Y: max(0, (height-modalHeight)/2),
		W: modalWidth,
		H: modalHeight,
	}
	l.ModalText = Rect{X: l.Modal.X + 1, Y: l.Modal.Y + 2, W: modalWidth - 2, H: 1}
	l.ResetButton = centered(width, l.Modal.Y+4, len(buttonText))

	return l
}

// CellRect returns the inner rectangle of a board cell.
func (l Layout) CellRect(cell int) Rect {
	row, col := cell/3, cell%3
	return Rect{
		X: l.Grid.X + 1 + col*(cellWidth+1),
		Y: l.Grid.Y + 1 + row*(cellHeight+1),
		W: cellWidth,
		H: cellHeight,
	}
}

// CellAt returns the board cell under the point, if any. Grid lines belong to no cell.
func (l Layout) CellAt(x, y int) (int, bool) {
	for cell := 0; cell < entity.BoardSize; cell++ {
		if l.CellRect(cell).Contains(x, y) {
			return cell, true
		}
	}
	return 0, false
}

// TargetAt hit-tests a click. While the result dialog is open only its button reacts.
func (l Layout) TargetAt(x, y int, modalOpen bool) Target {
	if modalOpen {
		if l.ResetButton.Contains(x, y) {
			return Target{Kind: TargetResetButton}
		}
		return Target{Kind: TargetNone}
	}

	if cell, ok := l.CellAt(x, y); ok {
		return Target{Kind: TargetCell, Cell: cell}
	}

	switch {
	case l.Toggle.Contains(x, y):
		return Target{Kind: TargetThemeToggle}
	case l.Link.Contains(x, y):
		return Target{Kind: TargetDownloadLink}
	default:
		return Target{Kind: TargetNone}
	}
}

func centered(width, y, length int) Rect {
	return Rect{X: max(0, (width-length)/2), Y: y, W: length, H: 1}
}

func toggleLabel(t Theme) string {
	if t.IsDark() {
		return "Dark theme [on ]"
	}
	return "Dark theme [off]"
}
