package failure

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Classifier maps any failure to an HTTP status and an Envelope. It holds no
// per request state and is safe for concurrent use.
type Classifier struct {
	logger *zerolog.Logger
	now    func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for the diagnostic record. Without it the
// global zerolog logger is used at classification time.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Classifier) {
		c.logger = &logger
	}
}

// WithClock sets the clock used for envelope timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClassifier creates a new classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{now: time.Now}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Classify returns the status code and envelope for err. Every call writes
// exactly one error level log record with the full original failure.
func (c *Classifier) Classify(err error) (int, Envelope) {
	at := c.now()

	for _, r := range rules {
		if !r.match(err) {
			continue
		}

		res := r.respond(err)
		c.log(err, r.name, res)

		return res.status, newEnvelope(res.message, res.code, res.details, at)
	}

	// unreachable, the last rule matches everything
	return 0, Envelope{}
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}

	return names
}

func (c *Classifier) log(err error, ruleName string, res response) {
	logger := c.logger
	if logger == nil {
		logger = &log.Logger
	}

	logger.Error().
		Stack().
		Err(err).
		Str("rule", ruleName).
		Int("status", res.status).
		Str("errorCode", string(res.code)).
		Str("origin", fmt.Sprintf("%T", err)).
		Msg("request failed")
}
