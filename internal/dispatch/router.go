// Package dispatch registers destination URLs with the shoutrrr dispatch
// library and runs the single synchronous notify pass over them. Everything
// below the URL boundary (scheme semantics, per-service formatting, transport)
// is owned by shoutrrr.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/rs/zerolog"

	"notify-runner/internal/domain/model"
)

// Sender delivers one message to a single registered destination.
// *router.ServiceRouter from shoutrrr satisfies it.
type Sender interface {
	Send(message string, params *types.Params) []error
}

// SenderFactory builds a Sender for one destination URL. An error means the
// URL's scheme is malformed or unsupported by the dispatch library.
type SenderFactory func(rawURL string) (Sender, error)

// ShoutrrrFactory is the production SenderFactory.
func ShoutrrrFactory(rawURL string) (Sender, error) {
	return shoutrrr.CreateSender(rawURL)
}

// destination pairs a sender with the scheme it was registered under.
// Only the scheme is retained: destination URLs embed credentials and
// must never reach the logs whole.
type destination struct {
	scheme string
	sender Sender
}

// Router is the destination set for one invocation. It is built once,
// used for a single notify pass, and discarded with the process.
type Router struct {
	factory SenderFactory
	logger  zerolog.Logger
	dests   []destination
}

// NewRouter creates an empty Router registering destinations through factory.
func NewRouter(factory SenderFactory, logger *zerolog.Logger) *Router {
	return &Router{
		factory: factory,
		logger:  logger.With().Str("component", "dispatch").Logger(),
	}
}

// Add trims and registers one candidate URL. Empty candidates and URLs the
// dispatch library rejects are skipped, reported only by the return value;
// upstream is expected to have validated its destinations already.
func (r *Router) Add(rawURL string) bool {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return false
	}

	sender, err := r.factory(url)
	if err != nil {
		r.logger.Debug().Str("scheme", schemeOf(url)).Err(err).Msg("destination rejected")
		return false
	}

	r.dests = append(r.dests, destination{scheme: schemeOf(url), sender: sender})
	return true
}

// Size returns the number of registered destinations.
func (r *Router) Size() int {
	return len(r.dests)
}

// Notify runs one synchronous pass over all registered destinations.
// The returned bool is true only when every destination reported success;
// per-destination failures are logged and folded into it. A non-nil error
// means the pass was aborted before completing, which callers must report
// as a dispatch failure rather than a delivery result.
func (r *Router) Notify(ctx context.Context, msg model.Message) (bool, error) {
	params := types.Params{"title": msg.Title}

	ok := true
	for _, d := range r.dests {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("notify pass aborted: %w", err)
		}
		for _, err := range d.sender.Send(msg.Body, &params) {
			if err != nil {
				ok = false
				r.logger.Error().
					Str("scheme", d.scheme).
					Str("notify_type", string(msg.Type)).
					Err(err).
					Msg("destination delivery failed")
			}
		}
	}

	return ok, nil
}

func schemeOf(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i > 0 {
		return rawURL[:i]
	}
	return "unknown"
}
