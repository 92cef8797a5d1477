// Package runner owns the one-shot pipeline: decode the request, build the
// destination set, run the notify pass, and report the result on stdout with
// the matching exit code.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"notify-runner/internal/config"
	"notify-runner/internal/dispatch"
	"notify-runner/internal/request"
)

// Contract messages for failures past payload validation.
const (
	msgNoDestinations = "No valid notification destinations"
	msgNotifyFailed   = "Shoutrrr notify failed"
)

// Runner executes one notification request read from stdin and writes
// exactly one JSON result object to stdout. Diagnostics go to the logger
// only; stdout carries nothing but the result.
type Runner struct {
	stdin   io.Reader
	stdout  io.Writer
	factory dispatch.SenderFactory
	cfg     *config.Config
	logger  zerolog.Logger
}

func New(cfg *config.Config, logger *zerolog.Logger, factory dispatch.SenderFactory, stdin io.Reader, stdout io.Writer) *Runner {
	return &Runner{
		stdin:   stdin,
		stdout:  stdout,
		factory: factory,
		cfg:     cfg,
		logger:  logger.With().Str("component", "runner").Logger(),
	}
}

// Run processes a single request and returns the process exit code:
// 0 when a dispatch attempt completed and reported success, 1 for any
// validation failure, empty destination set, or failed dispatch.
func (r *Runner) Run(ctx context.Context) int {
	req, err := request.Decode(r.stdin)
	if err != nil {
		var verr *request.ValidationError
		if !errors.As(err, &verr) {
			// request.Decode only returns ValidationErrors; anything else
			// would be a bug, but the contract still wants a JSON result.
			r.logger.Error().Err(err).Msg("unexpected decode error")
			return r.fail("Invalid JSON payload")
		}
		r.logger.Warn().Err(verr).Msg("payload rejected")
		return r.fail(verr.Message)
	}

	router := dispatch.NewRouter(r.factory, &r.logger)
	skipped := 0
	for _, raw := range req.URLs {
		if !router.Add(raw) {
			skipped++
		}
	}
	if router.Size() == 0 {
		r.logger.Warn().Int("skipped", skipped).Msg("no destinations registered")
		return r.fail(msgNoDestinations)
	}

	if t := r.cfg.Dispatch.Timeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	ok, err := router.Notify(ctx, req.Message)
	if err != nil {
		r.logger.Error().Err(err).Msg("notify pass failed")
		return r.fail(msgNotifyFailed)
	}

	r.logger.Info().
		Bool("success", ok).
		Int("destinations", router.Size()).
		Int("skipped", skipped).
		Str("notify_type", string(req.Message.Type)).
		Msg("dispatch finished")

	if err := r.report(resultResponse{Success: ok, Destinations: router.Size()}); err != nil {
		return 1
	}
	if ok {
		return 0
	}
	return 1
}

func (r *Runner) fail(msg string) int {
	_ = r.report(errorResponse{Success: false, Error: msg})
	return 1
}

// report writes the single newline-terminated result object to stdout.
func (r *Runner) report(result any) error {
	if err := json.NewEncoder(r.stdout).Encode(result); err != nil {
		r.logger.Error().Err(err).Msg("failed to write result")
		return err
	}
	return nil
}
