package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

type resultPublisher interface {
	Publish(ctx context.Context, result *entity.Result) error
}

type gameEngine interface {
	ApplyMove(cell int) bool
	Reset()
	Board() entity.Board
	CurrentPlayer() entity.Mark
	Outcome() entity.Outcome
	OnFinish(listener tictactoe.FinishListener)
}

// GameState - what a renderer needs to draw one frame.
type GameState struct {
	RoundID       string
	Board         entity.Board
	CurrentPlayer entity.Mark
	Outcome       entity.Outcome
}

// GameManager - drives a single local game for the presentation layer. Play and Restart are
// expected to be called from one goroutine (the UI event loop); only result publishing runs
// in the background.
type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	engine     gameEngine
	roundID    string
	publishers []resultPublisher

	publishTimeout time.Duration
	inFlight       sync.WaitGroup
	now            func() time.Time
}

func NewGameManager(logger *slog.Logger, tracer trace.Tracer, engine gameEngine, publishTimeout time.Duration) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		tracer: tracer,

		engine:  engine,
		roundID: uuid.NewString(),

		publishTimeout: publishTimeout,
		now:            time.Now,
	}

	engine.OnFinish(manager.handleFinish)

	return manager
}

// AddPublisher - registers a sink for finished rounds.
func (that *GameManager) AddPublisher(publisher resultPublisher) {
	that.publishers = append(that.publishers, publisher)
}

// OnFinish - lets the presentation layer react to a finished round, e.g. by opening a dialog.
func (that *GameManager) OnFinish(listener tictactoe.FinishListener) {
	that.engine.OnFinish(listener)
}

// Play - applies a move for the current player. Illegal moves are ignored.
func (that *GameManager) Play(ctx context.Context, cell int) bool {
	log := that.logger.With("method", "Play", "round_id", that.roundID, "cell", cell)

	player := that.engine.CurrentPlayer()

	_, span := that.tracer.Start(ctx, "game.move")
	defer span.End()

	applied := that.engine.ApplyMove(cell)
	outcome := that.engine.Outcome()

	span.SetAttributes(
		attribute.String("game.round_id", that.roundID),
		attribute.Int("game.cell", cell),
		attribute.String("game.player", string(player)),
		attribute.Bool("game.move_applied", applied),
		attribute.String("game.outcome", outcome.String()),
	)

	if !applied {
		log.Debug("move ignored", "player", player, "outcome", outcome.String())
		return false
	}

	log.Debug("move applied", "player", player, "outcome", outcome.String())

	return true
}

// Restart - resets the board and starts a new round.
func (that *GameManager) Restart(ctx context.Context) {
	_, span := that.tracer.Start(ctx, "game.reset")
	defer span.End()

	previous := that.roundID

	that.engine.Reset()
	that.roundID = uuid.NewString()

	span.SetAttributes(
		attribute.String("game.previous_round_id", previous),
		attribute.String("game.round_id", that.roundID),
	)

	that.logger.Info("round restarted", "previous_round_id", previous, "round_id", that.roundID)
}

func (that *GameManager) State() GameState {
	return GameState{
		RoundID:       that.roundID,
		Board:         that.engine.Board(),
		CurrentPlayer: that.engine.CurrentPlayer(),
		Outcome:       that.engine.Outcome(),
	}
}

// Close - waits for results still being published.
func (that *GameManager) Close() {
	that.inFlight.Wait()
}

func (that *GameManager) handleFinish(board entity.Board, outcome entity.Outcome) {
	result := &entity.Result{
		RoundID:    that.roundID,
		Outcome:    outcome.Kind,
		Winner:     outcome.Winner,
		Board:      board,
		FinishedAt: that.now().UTC(),
	}

	that.logger.Info("round finished", "round_id", result.RoundID, "outcome", outcome.String())

	for _, publisher := range that.publishers {
		that.inFlight.Add(1)
		go that.publish(publisher, result)
	}
}

func (that *GameManager) publish(publisher resultPublisher, result *entity.Result) {
	defer that.inFlight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), that.publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, result); err != nil {
		that.logger.Error("failed to publish result", "round_id", result.RoundID, "error", err)
	}
}
