package tictactoe

import "github.com/rocketscienceinc/triqui/internal/entity"

// FinishListener - called once when a round leaves InProgress.
type FinishListener func(board entity.Board, outcome entity.Outcome)

// Engine holds the board, the current player and the derived outcome of a single round.
// It is not safe for concurrent use; callers serialize access the way a UI event loop does.
type Engine struct {
	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome

	listeners []FinishListener
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// OnFinish - registers a listener for the InProgress -> Win/Draw transition.
func (that *Engine) OnFinish(listener FinishListener) {
	that.listeners = append(that.listeners, listener)
}

// ApplyMove - marks the cell for the current player. Occupied or out of range cells and moves
// after the round is over are ignored; the return value reports whether the move was applied.
func (that *Engine) ApplyMove(cell int) bool {
	if !that.isLegal(cell) {
		return false
	}

	that.board[cell] = that.turn
	that.updateGameState()

	return true
}

// Reset - starts a new round: empty board, X to move.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.X
	that.outcome = entity.Outcome{Kind: entity.OutcomeInProgress}
}

func (that *Engine) Board() entity.Board {
	return that.board
}

// CurrentPlayer - the player to move, or the winner once the round is won.
func (that *Engine) CurrentPlayer() entity.Mark {
	return that.turn
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

// isLegal - checks if the move is valid.
func (that *Engine) isLegal(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	if that.outcome.IsTerminal() {
		return false
	}

	return that.board[cell] == entity.Empty
}

// updateGameState - recomputes the outcome after a move and notifies on a finished round.
func (that *Engine) updateGameState() {
	that.outcome = entity.ComputeOutcome(that.board)

	if that.outcome.IsInProgress() {
		that.turn = that.turn.Opponent()
		return
	}

	for _, listener := range that.listeners {
		listener(that.board, that.outcome)
	}
}
