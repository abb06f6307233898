package entity

import "time"

const BoardSize = 9

// Mark - content of a board cell, also used for players.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// WinCombos - every line of the board, in the order they are checked.
var WinCombos = [][3]int{
	// rows
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	// columns
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	// diagonals
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other player, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Board - 3x3 grid, cell index is row*3+col.
type Board [BoardSize]Mark

// Count - number of cells holding the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(Empty) == 0
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// ComputeOutcome - derives the outcome of a board. The first completed line in WinCombos order
// decides the winner.
func ComputeOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Kind: OutcomeWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Kind: OutcomeInProgress}
	}

	return Outcome{Kind: OutcomeDraw}
}

// Result - a finished round, as handed to observers.
type Result struct {
	RoundID    string      `json:"round_id"`
	Outcome    OutcomeKind `json:"outcome"`
	Winner     Mark        `json:"winner,omitempty"`
	Board      Board       `json:"board"`
	FinishedAt time.Time   `json:"finished_at"`
}
