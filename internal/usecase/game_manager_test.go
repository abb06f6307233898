package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/telemetry"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

var errPublishFailed = errors.New("publish failed")

type mockPublisher struct {
	mock.Mock
}

func (that *mockPublisher) Publish(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func newTestManager(t *testing.T) *GameManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, telemetry.NoopTracer(), tictactoe.NewEngine(), time.Second)
	manager.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return manager
}

func play(t *testing.T, manager *GameManager, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, manager.Play(context.Background(), cell), "cell %d", cell)
	}
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Legal move updates the state", func(t *testing.T) {
		// Given: a fresh game
		manager := newTestManager(t)

		// When: X plays the center
		applied := manager.Play(ctx, 4)

		// Then: the state shows the move and O to play
		require.True(t, applied)
		state := manager.State()
		assert.Equal(t, entity.X, state.Board[4])
		assert.Equal(t, entity.O, state.CurrentPlayer)
		assert.True(t, state.Outcome.IsInProgress())
		assert.NotEmpty(t, state.RoundID)
	})

	t.Run("Illegal move is ignored", func(t *testing.T) {
		// Given: X already on the center
		manager := newTestManager(t)
		play(t, manager, 4)
		before := manager.State()

		// When: O plays the same cell
		applied := manager.Play(ctx, 4)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, before, manager.State())
	})
}

func TestGameManager_Restart(t *testing.T) {
	// Given: a finished round
	manager := newTestManager(t)
	play(t, manager, 0, 1, 4, 2, 8)
	finishedRound := manager.State().RoundID

	// When: the game is restarted
	manager.Restart(context.Background())

	// Then: the board is empty, X moves and a new round id is issued
	state := manager.State()
	assert.Equal(t, entity.Board{}, state.Board)
	assert.Equal(t, entity.X, state.CurrentPlayer)
	assert.True(t, state.Outcome.IsInProgress())
	assert.NotEqual(t, finishedRound, state.RoundID)
}

func TestGameManager_Publish(t *testing.T) {
	t.Run("Finished round is published once", func(t *testing.T) {
		// Given: a game with a publisher
		manager := newTestManager(t)
		publisher := &mockPublisher{}
		manager.AddPublisher(publisher)

		roundID := manager.State().RoundID
		expected := &entity.Result{
			RoundID: roundID,
			Outcome: entity.OutcomeWin,
			Winner:  entity.X,
			Board: entity.Board{
				entity.X, entity.O, entity.O,
				entity.Empty, entity.X, entity.Empty,
				entity.Empty, entity.Empty, entity.X,
			},
			FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}

		publisher.On("Publish", mock.Anything, expected).Return(nil).Once()

		// When: X wins and more moves are attempted
		play(t, manager, 0, 1, 4, 2, 8)
		manager.Play(context.Background(), 5)
		manager.Close()

		// Then: the result went out exactly once
		publisher.AssertExpectations(t)
	})

	t.Run("Draw carries no winner", func(t *testing.T) {
		// Given: a game with a publisher
		manager := newTestManager(t)
		publisher := &mockPublisher{}
		manager.AddPublisher(publisher)

		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Outcome == entity.OutcomeDraw && result.Winner == entity.Empty && result.Board.IsFull()
		})).Return(nil).Once()

		// When: the round ends in a draw
		play(t, manager, 0, 1, 2, 4, 7, 3, 5, 8, 6)
		manager.Close()

		// Then: a draw is published
		publisher.AssertExpectations(t)
	})

	t.Run("Publish failure does not affect the game", func(t *testing.T) {
		// Given: a publisher that fails and one that works
		manager := newTestManager(t)
		failing := &mockPublisher{}
		working := &mockPublisher{}
		manager.AddPublisher(failing)
		manager.AddPublisher(working)

		failing.On("Publish", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(errPublishFailed).Once()
		working.On("Publish", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil).Once()

		// When: X wins
		play(t, manager, 0, 1, 4, 2, 8)
		manager.Close()

		// Then: both were called and the game is still a win for X
		failing.AssertExpectations(t)
		working.AssertExpectations(t)
		assert.Equal(t, entity.Outcome{Kind: entity.OutcomeWin, Winner: entity.X}, manager.State().Outcome)
	})

	t.Run("Next round is published with its own id", func(t *testing.T) {
		// Given: a game with a publisher that records round ids
		manager := newTestManager(t)
		publisher := &mockPublisher{}
		manager.AddPublisher(publisher)

		var rounds []string
		publisher.On("Publish", mock.Anything, mock.AnythingOfType("*entity.Result")).
			Run(func(args mock.Arguments) {
				rounds = append(rounds, args.Get(1).(*entity.Result).RoundID)
			}).
			Return(nil).
			Twice()

		// When: two rounds are played
		first := manager.State().RoundID
		play(t, manager, 0, 1, 4, 2, 8)
		manager.Close()

		manager.Restart(context.Background())
		second := manager.State().RoundID
		play(t, manager, 0, 1, 4, 2, 8)
		manager.Close()

		// Then: each result carries the id of its round
		assert.Equal(t, []string{first, second}, rounds)
	})
}

func TestGameManager_OnFinish(t *testing.T) {
	// Given: a presentation listener
	manager := newTestManager(t)

	calls := 0
	manager.OnFinish(func(_ entity.Board, outcome entity.Outcome) {
		calls++
		assert.Equal(t, entity.OutcomeWin, outcome.Kind)
	})

	// When: X wins and the game restarts
	play(t, manager, 0, 1, 4, 2, 8)
	manager.Restart(context.Background())

	// Then: the listener fired once
	assert.Equal(t, 1, calls)
}

func TestGameManager_Spans(t *testing.T) {
	// Given: a manager with a recording tracer
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, provider.Tracer("test"), tictactoe.NewEngine(), time.Second)

	// When: one legal move, one illegal move and a restart
	manager.Play(context.Background(), 4)
	manager.Play(context.Background(), 4)
	manager.Restart(context.Background())

	// Then: three spans were recorded with move attributes
	spans := recorder.Ended()
	require.Len(t, spans, 3)

	assert.Equal(t, "game.move", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("game.move_applied", true))
	assert.Contains(t, spans[0].Attributes(), attribute.String("game.player", "X"))

	assert.Equal(t, "game.move", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("game.move_applied", false))
	assert.Contains(t, spans[1].Attributes(), attribute.String("game.player", "O"))

	assert.Equal(t, "game.reset", spans[2].Name())
}
