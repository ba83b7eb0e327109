package printing

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Spooler accepts print jobs after the owning transaction has committed.
// Enqueue never blocks the caller for long and never returns printer
// failures; a lost ticket must not fail a financial mutation.
type Spooler interface {
	Enqueue(ctx context.Context, job Job)
	Close() error
}

// Dispatcher delivers a rendered job to the physical printer.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "printing").Logger()

// channelSpooler is the in-process fallback when no broker is configured:
// a bounded queue drained by a single worker goroutine.
type channelSpooler struct {
	jobs       chan Job
	dispatcher Dispatcher
	timeout    time.Duration
	done       chan struct{}
}

func NewChannelSpooler(d Dispatcher, timeout time.Duration) Spooler {
	s := &channelSpooler{
		jobs:       make(chan Job, 128),
		dispatcher: d,
		timeout:    timeout,
		done:       make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *channelSpooler) Enqueue(ctx context.Context, job Job) {
	select {
	case s.jobs <- job:
	default:
		logger.Warn().Str("job_id", job.ID).Str("type", string(job.Type)).Msg("print queue full, job dropped")
	}
}

func (s *channelSpooler) run() {
	defer close(s.done)
	for job := range s.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := s.dispatcher.Dispatch(ctx, job); err != nil {
			logger.Error().Err(err).Str("job_id", job.ID).Str("type", string(job.Type)).Msg("print dispatch failed")
		}
		cancel()
	}
}

func (s *channelSpooler) Close() error {
	close(s.jobs)
	<-s.done
	return nil
}

// NopSpooler discards every job. Used when printing is disabled.
type NopSpooler struct{}

func (NopSpooler) Enqueue(ctx context.Context, job Job) {}
func (NopSpooler) Close() error                         { return nil }
