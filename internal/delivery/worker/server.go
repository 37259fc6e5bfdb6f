// Package worker contains the background delivery that generates
// periodic activity summaries.
package worker

import (
	"context"
	"log/slog"
	"time"

	"fittrack/config"
	"fittrack/internal/delivery"
	"fittrack/internal/domain/lifecycle"
	"fittrack/internal/usecase"

	"go.uber.org/fx"
)

type summaryWorker struct {
	cfg       *config.Config
	logger    *slog.Logger
	generator usecase.SummaryGenerator
	stop      chan struct{}
	done      chan struct{}
}

// ServerParams holds dependencies for the summary worker
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Generator usecase.SummaryGenerator
}

// NewServer creates the summary worker delivery. It runs the generator
// on a fixed interval until stopped.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &summaryWorker{
		cfg:       params.Cfg,
		logger:    params.Logger,
		generator: params.Generator,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.shutdown,
	})

	return srv, nil
}

// Serve runs the generation loop. A run happens immediately on start and
// then once per configured interval.
func (s *summaryWorker) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.cfg.Summary.Enabled {
		s.logger.Info("Summary worker disabled")
		<-s.stop

		return nil
	}

	s.logger.Info("Starting summary worker",
		slog.Duration("interval", s.cfg.Summary.Interval))

	ticker := time.NewTicker(s.cfg.Summary.Interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			return nil
		}
	}
}

func (s *summaryWorker) runOnce(ctx context.Context) {
	start := time.Now()
	written, err := s.generator.GenerateDueSummaries(ctx, start.UTC())
	if err != nil {
		s.logger.Error("Summary generation failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Summary generation finished",
		slog.Int("written", written),
		slog.Duration("elapsed", time.Since(start)))
}

func (s *summaryWorker) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down summary worker")
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
