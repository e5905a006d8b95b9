package bot

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Rezzylol/Lunaticbot/internal/dedup"
	dex "github.com/Rezzylol/Lunaticbot/internal/dex/solana"
	"github.com/Rezzylol/Lunaticbot/internal/journal"
)

const testMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

type fakeQuoter struct {
	calls int
	quote *dex.Quote
	err   error
}

func (f *fakeQuoter) QuoteToken(ctx context.Context, outputMint string) (*dex.Quote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

type fakeReplier struct {
	sent []string
	err  error
}

func (f *fakeReplier) Reply(text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

type fakeAnnouncer struct {
	sent []string
	err  error
}

func (f *fakeAnnouncer) Announce(text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeJournal struct {
	entries []journal.Entry
}

func (f *fakeJournal) Record(entry journal.Entry) {
	f.entries = append(f.entries, entry)
}

func TestHandleTextQuoteSuccess(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutputMint: testMint, OutAmount: "123456"}}
	group := &fakeAnnouncer{}
	rec := &fakeJournal{}
	router := NewRouter(zerolog.Nop(), registry, quoter, WithGroup(group), WithJournal(rec))

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, reply); err != nil {
		t.Fatalf("HandleText returned error: %v", err)
	}
	if len(reply.sent) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(reply.sent))
	}
	if !strings.Contains(reply.sent[0], "123456") || !strings.Contains(reply.sent[0], testMint) {
		t.Fatalf("reply missing quote details: %s", reply.sent[0])
	}
	if len(group.sent) != 1 {
		t.Fatalf("expected exactly one group forward, got %d", len(group.sent))
	}
	if !strings.Contains(group.sent[0], testMint) || !strings.Contains(group.sent[0], "123456") {
		t.Fatalf("group notice missing details: %s", group.sent[0])
	}
	if !registry.Seen(testMint) {
		t.Fatalf("expected address marked seen after success")
	}
	if len(rec.entries) != 1 || rec.entries[0].Status != journal.StatusQuoted {
		t.Fatalf("expected one quoted journal entry, got %+v", rec.entries)
	}
	if rec.entries[0].Ts.IsZero() {
		t.Fatalf("expected journal timestamp to be set")
	}
}

func TestHandleTextTrimsWhitespace(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "5"}}
	router := NewRouter(zerolog.Nop(), registry, quoter)

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), "  "+testMint+"\n", reply); err != nil {
		t.Fatalf("HandleText returned error: %v", err)
	}
	if quoter.calls != 1 {
		t.Fatalf("expected one quote call, got %d", quoter.calls)
	}
	if !registry.Seen(testMint) {
		t.Fatalf("expected trimmed address marked seen")
	}
}

func TestHandleTextNoGroupConfigured(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "77"}}
	router := NewRouter(zerolog.Nop(), registry, quoter)

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, reply); err != nil {
		t.Fatalf("HandleText returned error: %v", err)
	}
	if len(reply.sent) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(reply.sent))
	}
}

func TestHandleTextInvalidAddress(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "1"}}
	router := NewRouter(zerolog.Nop(), registry, quoter)

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), "definitely not an address", reply); err != nil {
		t.Fatalf("HandleText returned error: %v", err)
	}
	if quoter.calls != 0 {
		t.Fatalf("expected no quote calls for invalid input, got %d", quoter.calls)
	}
	if registry.Len() != 0 {
		t.Fatalf("expected registry untouched, got %d entries", registry.Len())
	}
	if len(reply.sent) != 1 || !strings.Contains(reply.sent[0], "valid Solana address") {
		t.Fatalf("expected rejection reply, got %v", reply.sent)
	}
}

func TestHandleTextDuplicate(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "9"}}
	group := &fakeAnnouncer{}
	router := NewRouter(zerolog.Nop(), registry, quoter, WithGroup(group))

	first := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, first); err != nil {
		t.Fatalf("first HandleText returned error: %v", err)
	}
	second := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, second); err != nil {
		t.Fatalf("second HandleText returned error: %v", err)
	}
	if quoter.calls != 1 {
		t.Fatalf("expected quote called once, got %d", quoter.calls)
	}
	if len(group.sent) != 1 {
		t.Fatalf("expected one forward, got %d", len(group.sent))
	}
	if len(second.sent) != 1 || second.sent[0] != "This address has already been processed." {
		t.Fatalf("expected duplicate notice, got %v", second.sent)
	}
}

func TestHandleTextQuoteFailure(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{err: errors.New("jupiter quote status 500")}
	group := &fakeAnnouncer{}
	rec := &fakeJournal{}

	var buf bytes.Buffer
	router := NewRouter(zerolog.New(&buf), registry, quoter, WithGroup(group), WithJournal(rec))

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, reply); err != nil {
		t.Fatalf("HandleText returned error: %v", err)
	}
	if len(reply.sent) != 1 || !strings.Contains(reply.sent[0], "Failed to get quote") {
		t.Fatalf("expected generic failure reply, got %v", reply.sent)
	}
	if len(group.sent) != 0 {
		t.Fatalf("expected no forwards on quote failure, got %d", len(group.sent))
	}
	if !registry.Seen(testMint) {
		t.Fatalf("expected address to stay marked seen after failure")
	}
	if !strings.Contains(buf.String(), "jupiter quote status 500") {
		t.Fatalf("log does not contain failure cause: %s", buf.String())
	}
	if len(rec.entries) != 1 || rec.entries[0].Status != journal.StatusFailed {
		t.Fatalf("expected one failed journal entry, got %+v", rec.entries)
	}

	// Failed addresses are not retried: a resubmission short-circuits.
	retry := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, retry); err != nil {
		t.Fatalf("retry HandleText returned error: %v", err)
	}
	if quoter.calls != 1 {
		t.Fatalf("expected no second quote attempt, got %d calls", quoter.calls)
	}
	if len(retry.sent) != 1 || retry.sent[0] != "This address has already been processed." {
		t.Fatalf("expected duplicate notice on retry, got %v", retry.sent)
	}
}

func TestHandleTextForwardFailureSwallowed(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "42"}}
	group := &fakeAnnouncer{err: errors.New("chat not found")}

	var buf bytes.Buffer
	router := NewRouter(zerolog.New(&buf), registry, quoter, WithGroup(group))

	reply := &fakeReplier{}
	if err := router.HandleText(context.Background(), testMint, reply); err != nil {
		t.Fatalf("expected forward failure to be swallowed, got %v", err)
	}
	if len(reply.sent) != 1 || !strings.Contains(reply.sent[0], "42") {
		t.Fatalf("expected sender confirmation despite forward failure, got %v", reply.sent)
	}
	if !strings.Contains(buf.String(), "chat not found") {
		t.Fatalf("log does not contain forward failure cause: %s", buf.String())
	}
}

func TestHandleTextReplyErrorPropagates(t *testing.T) {
	registry := dedup.NewRegistry()
	quoter := &fakeQuoter{quote: &dex.Quote{OutAmount: "1"}}
	router := NewRouter(zerolog.Nop(), registry, quoter)

	reply := &fakeReplier{err: errors.New("blocked by user")}
	if err := router.HandleText(context.Background(), testMint, reply); err == nil {
		t.Fatalf("expected reply error to propagate")
	}
}

func TestHandleStart(t *testing.T) {
	router := NewRouter(zerolog.Nop(), dedup.NewRegistry(), &fakeQuoter{})
	reply := &fakeReplier{}
	if err := router.HandleStart(reply, "Ada"); err != nil {
		t.Fatalf("HandleStart returned error: %v", err)
	}
	if len(reply.sent) != 1 || !strings.Contains(reply.sent[0], "Hi Ada!") {
		t.Fatalf("expected greeting with first name, got %v", reply.sent)
	}
}

func TestHandleHelp(t *testing.T) {
	router := NewRouter(zerolog.Nop(), dedup.NewRegistry(), &fakeQuoter{})
	reply := &fakeReplier{}
	if err := router.HandleHelp(reply); err != nil {
		t.Fatalf("HandleHelp returned error: %v", err)
	}
	if len(reply.sent) != 1 || !strings.Contains(reply.sent[0], "/help - Show this help message") {
		t.Fatalf("expected usage text, got %v", reply.sent)
	}
}
