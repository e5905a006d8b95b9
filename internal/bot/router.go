// Package bot routes inbound chat messages through validation, dedup,
// and the Jupiter quote pipeline.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rezzylol/Lunaticbot/internal/dedup"
	dex "github.com/Rezzylol/Lunaticbot/internal/dex/solana"
	"github.com/Rezzylol/Lunaticbot/internal/journal"
	"github.com/Rezzylol/Lunaticbot/internal/metrics"
)

// Quoter prices a candidate token mint against the fixed WSOL buy.
type Quoter interface {
	QuoteToken(ctx context.Context, outputMint string) (*dex.Quote, error)
}

// Replier sends text back to the conversation a message arrived from.
type Replier interface {
	Reply(text string) error
}

// Announcer delivers a notice to the shared group chat.
type Announcer interface {
	Announce(text string) error
}

// QuoteRecorder captures quote outcomes for later inspection.
type QuoteRecorder interface {
	Record(entry journal.Entry)
}

// User-facing replies. Kept stable so screenshots and chat history stay
// consistent across releases.
const (
	replyInvalid     = "This doesn't look like a valid Solana address. Please try again."
	replyDuplicate   = "This address has already been processed."
	replyQuoteFailed = "Failed to get quote from Jupiter. Please try again later."
)

const helpText = `
Here are the commands I understand:
/start - Start the bot
/help - Show this help message

Just send me a Solana contract address and I'll try to swap 0.01 SOL for tokens!
`

// Router owns the message pipeline. Each inbound message runs start-to-finish
// on its own goroutine; the dedup registry is the only shared state.
type Router struct {
	log      zerolog.Logger
	registry *dedup.Registry
	quoter   Quoter
	group    Announcer
	journal  QuoteRecorder
}

// Option customizes optional router collaborators.
type Option func(*Router)

// WithGroup enables best-effort forwarding of accepted addresses to a group chat.
func WithGroup(group Announcer) Option {
	return func(r *Router) { r.group = group }
}

// WithJournal enables outcome journaling.
func WithJournal(rec QuoteRecorder) Option {
	return func(r *Router) { r.journal = rec }
}

// NewRouter wires the pipeline around a shared registry and quote client.
func NewRouter(log zerolog.Logger, registry *dedup.Registry, quoter Quoter, opts ...Option) *Router {
	r := &Router{log: log, registry: registry, quoter: quoter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleStart greets the sender by first name.
func (r *Router) HandleStart(reply Replier, firstName string) error {
	return reply.Reply(fmt.Sprintf("Hi %s! Send me a Solana contract address to execute a swap.", firstName))
}

// HandleHelp sends the static usage text.
func (r *Router) HandleHelp(reply Replier) error {
	return reply.Reply(helpText)
}

// HandleText runs one plain text message through the pipeline:
// validate, dedup, quote, announce, confirm. The address is marked seen
// before the quote call, so a failed quote is never retried and
// near-simultaneous duplicates cannot both reach Jupiter.
func (r *Router) HandleText(ctx context.Context, text string, reply Replier) error {
	address := strings.TrimSpace(text)

	if !dex.IsValidAddress(address) {
		r.log.Debug().Str("text", address).Msg("rejected non-address message")
		metrics.MessagesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return reply.Reply(replyInvalid)
	}

	if r.registry.Seen(address) {
		r.log.Debug().Str("address", address).Msg("duplicate address")
		metrics.MessagesTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return reply.Reply(replyDuplicate)
	}
	r.registry.Mark(address)

	quote, err := r.quoter.QuoteToken(ctx, address)
	if err != nil {
		r.log.Error().Err(err).Str("address", address).Msg("jupiter quote failed")
		metrics.QuotesTotal.WithLabelValues("error").Inc()
		metrics.MessagesTotal.WithLabelValues(metrics.OutcomeQuoteFailed).Inc()
		r.record(journal.Entry{Address: address, Status: journal.StatusFailed, Error: err.Error()})
		return reply.Reply(replyQuoteFailed)
	}

	r.log.Info().Str("address", address).Str("out_amount", quote.OutAmount).Msg("quote received")
	metrics.QuotesTotal.WithLabelValues("ok").Inc()
	metrics.MessagesTotal.WithLabelValues(metrics.OutcomeQuoted).Inc()
	r.record(journal.Entry{Address: address, OutAmount: quote.OutAmount, Status: journal.StatusQuoted})

	// Group forward happens first but never blocks the sender reply:
	// a delivery failure is logged and swallowed.
	if r.group != nil {
		notice := fmt.Sprintf("🚀 New Solana contract address received: `%s`\nQuote received: %s tokens", address, quote.OutAmount)
		if err := r.group.Announce(notice); err != nil {
			r.log.Error().Err(err).Str("address", address).Msg("failed to forward to group")
			metrics.ForwardsTotal.WithLabelValues("error").Inc()
		} else {
			metrics.ForwardsTotal.WithLabelValues("ok").Inc()
		}
	}

	return reply.Reply(fmt.Sprintf("Processing swap for address: %s\nQuote received: %s tokens", address, quote.OutAmount))
}

func (r *Router) record(entry journal.Entry) {
	if r.journal == nil {
		return
	}
	entry.Ts = time.Now().UTC()
	r.journal.Record(entry)
}
