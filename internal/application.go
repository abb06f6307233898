package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/config"
	"github.com/rocketscienceinc/triqui/internal/linkopener"
	"github.com/rocketscienceinc/triqui/internal/repository"
	"github.com/rocketscienceinc/triqui/internal/repository/storage"
	"github.com/rocketscienceinc/triqui/internal/telemetry"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/ui"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

// RunApp - runs the application until the window is closed or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	theme, err := ui.ParseTheme(conf.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not set up telemetry: %w", err)
	}

	defer func() {
		if err = shutdownTelemetry(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, telemetry.Tracer("game"), tictactoe.NewEngine(), conf.PublishTimeout)

	if conf.Redis.Enabled {
		closeRedis, redisErr := attachRedisPublisher(ctx, conf.Redis, gameManager)
		if redisErr != nil {
			return redisErr
		}
		defer closeRedis()

		log.Info("Publishing results to redis", "channel", conf.Redis.Channel)
	}

	// runs before the redis connection is closed
	defer gameManager.Close()

	opener := linkopener.New(logger)
	defer opener.Wait()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}

	log.Info("Starting game", "theme", theme.String())

	if err = ui.NewApp(logger, screen, gameManager, opener, theme, conf.DownloadURL).Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	log.Info("Game closed, shutting down")

	return nil
}

func attachRedisPublisher(ctx context.Context, conf config.Redis, gameManager *usecase.GameManager) (func(), error) {
	redisAddrString := conf.GetRedisAddr()
	if redisAddrString == "" {
		return nil, apperror.ErrRedisAddrEmpty
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	publisher, err := repository.NewResultPublisher(redisStorage.Connection, conf.Channel)
	if err != nil {
		_ = redisStorage.Close()
		return nil, fmt.Errorf("could not create result publisher: %w", err)
	}

	gameManager.AddPublisher(publisher)

	return func() { _ = redisStorage.Close() }, nil
}
