package entity

import (
	"encoding/json"
	"fmt"
)

type OutcomeKind int

const (
	OutcomeInProgress OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

func (that OutcomeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

// Outcome - derived state of a board. Winner is set only for OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
}

func (that Outcome) IsInProgress() bool {
	return that.Kind == OutcomeInProgress
}

// IsTerminal - a win or a draw, no further moves are accepted.
func (that Outcome) IsTerminal() bool {
	return that.Kind == OutcomeWin || that.Kind == OutcomeDraw
}

func (that Outcome) String() string {
	if that.Kind == OutcomeWin {
		return fmt.Sprintf("%s(%s)", that.Kind, that.Winner)
	}

	return that.Kind.String()
}
