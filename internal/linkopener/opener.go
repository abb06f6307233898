package linkopener

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/browser"

	"github.com/rocketscienceinc/triqui/internal/apperror"
)

// Opener - opens external links in the user's browser without blocking the caller.
type Opener struct {
	logger *slog.Logger
	open   func(url string) error

	inFlight sync.WaitGroup
}

func New(logger *slog.Logger) *Opener {
	// the terminal belongs to the UI, the browser launcher must not write to it
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Opener{
		logger: logger.With("component", "link_opener"),
		open:   browser.OpenURL,
	}
}

// Open - fire-and-forget, failures are only logged.
func (that *Opener) Open(ctx context.Context, url string) {
	log := that.logger.With("method", "Open", "url", url)

	if url == "" {
		log.Error("failed to open link", "error", apperror.ErrEmptyDownloadURL)
		return
	}

	that.inFlight.Add(1)
	go func() {
		defer that.inFlight.Done()

		if ctx.Err() != nil {
			return
		}

		if err := that.open(url); err != nil {
			log.Error("failed to open link", "error", err)
			return
		}

		log.Info("link opened")
	}()
}

// Wait - blocks until every launched open call has returned.
func (that *Opener) Wait() {
	that.inFlight.Wait()
}
