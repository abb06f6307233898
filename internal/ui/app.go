package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

type game interface {
	Play(ctx context.Context, cell int) bool
	Restart(ctx context.Context)
	State() usecase.GameState
	OnFinish(listener tictactoe.FinishListener)
}

type linkOpener interface {
	Open(ctx context.Context, url string)
}

type eventScreen interface {
	canvas
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	Sync()
	Close()
}

// actionKind is what an input event asks the app to do.
type actionKind int

const (
	actionNone actionKind = iota
	actionQuit
	actionRestart
	actionToggleTheme
	actionOpenLink
	actionPlayCell
	actionPlayCursor
	actionCursor
)

type action struct {
	kind   actionKind
	cell   int
	dx, dy int
}

// App runs the single screen of the game.
type App struct {
	logger *slog.Logger

	screen   eventScreen
	renderer *Renderer
	game     game
	opener   linkOpener

	downloadURL string
	theme       Theme
	modalOpen   bool
	cursor      int
	running     bool
	mouseDown   bool
	layout      Layout
}

// NewApp wires the screen to a game. The result dialog opens from the game's finish hook.
func NewApp(logger *slog.Logger, screen eventScreen, g game, opener linkOpener, theme Theme, downloadURL string) *App {
	app := &App{
		logger:      logger.With("component", "ui"),
		screen:      screen,
		renderer:    NewRenderer(screen),
		game:        g,
		opener:      opener,
		downloadURL: downloadURL,
		theme:       theme,
		cursor:      4,
		running:     true,
	}

	g.OnFinish(func(_ entity.Board, outcome entity.Outcome) {
		app.modalOpen = true
		app.logger.Debug("result dialog opened", "outcome", outcome.String())
	})

	return app
}

// Run executes the event loop until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Close()

	stop := context.AfterFunc(ctx, func() {
		// wake the blocking PollEvent so the loop sees the cancellation
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for a.running {
		a.layout = a.renderer.Render(a.view())

		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}

		a.handleEvent(ctx, ev)
	}

	return nil
}

func (a *App) view() View {
	return View{
		State:     a.game.State(),
		Theme:     a.theme,
		ModalOpen: a.modalOpen,
		Cursor:    a.cursor,
	}
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.dispatch(ctx, actionForKey(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(ctx, x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			a.running = false
		}
	}
}

// handleMouse reacts to the press edge only; tcell repeats events while the button is held.
func (a *App) handleMouse(ctx context.Context, x, y int, pressed bool) {
	if !pressed {
		a.mouseDown = false
		return
	}
	if a.mouseDown {
		return
	}
	a.mouseDown = true

	a.dispatch(ctx, actionForTarget(a.layout.TargetAt(x, y, a.modalOpen)))
}

func (a *App) dispatch(ctx context.Context, act action) {
	switch act.kind {
	case actionQuit:
		a.running = false

	case actionRestart:
		a.restart(ctx)

	case actionToggleTheme:
		a.theme = a.theme.Toggle()
		a.logger.Debug("theme changed", "theme", a.theme.String())

	case actionOpenLink:
		a.opener.Open(ctx, a.downloadURL)

	case actionCursor:
		if !a.modalOpen {
			a.cursor = moveCursor(a.cursor, act.dx, act.dy)
		}

	case actionPlayCursor:
		// the dialog has a single button, Enter presses it
		if a.modalOpen {
			a.restart(ctx)
			return
		}
		a.game.Play(ctx, a.cursor)

	case actionPlayCell:
		if a.modalOpen {
			return
		}
		a.cursor = act.cell
		a.game.Play(ctx, act.cell)
	}
}

func (a *App) restart(ctx context.Context) {
	a.game.Restart(ctx)
	a.modalOpen = false
}

// actionForKey maps a key press to an action.
func actionForKey(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{kind: actionQuit}
	case tcell.KeyUp:
		return action{kind: actionCursor, dy: -1}
	case tcell.KeyDown:
		return action{kind: actionCursor, dy: 1}
	case tcell.KeyLeft:
		return action{kind: actionCursor, dx: -1}
	case tcell.KeyRight:
		return action{kind: actionCursor, dx: 1}
	case tcell.KeyEnter:
		return action{kind: actionPlayCursor}
	case tcell.KeyRune:
		return actionForRune(r)
	default:
		return action{kind: actionNone}
	}
}

func actionForRune(r rune) action {
	switch {
	case r == 'q' || r == 'Q':
		return action{kind: actionQuit}
	case r == 'r' || r == 'R':
		return action{kind: actionRestart}
	case r == 't' || r == 'T':
		return action{kind: actionToggleTheme}
	case r == 'd' || r == 'D':
		return action{kind: actionOpenLink}
	case r == ' ':
		return action{kind: actionPlayCursor}
	case r >= '1' && r <= '9':
		return action{kind: actionPlayCell, cell: int(r - '1')}
	default:
		return action{kind: actionNone}
	}
}

func actionForTarget(target Target) action {
	switch target.Kind {
	case TargetCell:
		return action{kind: actionPlayCell, cell: target.Cell}
	case TargetResetButton:
		return action{kind: actionRestart}
	case TargetThemeToggle:
		return action{kind: actionToggleTheme}
	case TargetDownloadLink:
		return action{kind: actionOpenLink}
	default:
		return action{kind: actionNone}
	}
}

// moveCursor moves within the 3x3 grid, stopping at the edges.
func moveCursor(cursor, dx, dy int) int {
	row := min(2, max(0, cursor/3+dy))
	col := min(2, max(0, cursor%3+dx))
	return row*3 + col
}
