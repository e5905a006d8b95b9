package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"
)

// Connect builds a long-polling Telegram client. apiURL overrides the
// public Bot API endpoint (useful for self-hosted servers); empty means
// the default. Handler errors that escape the router land in OnError.
func Connect(token, apiURL string, pollTimeoutSecs int, log zerolog.Logger) (*tele.Bot, error) {
	if pollTimeoutSecs <= 0 {
		pollTimeoutSecs = 10
	}
	return tele.NewBot(tele.Settings{
		Token:  token,
		URL:    apiURL,
		Poller: &tele.LongPoller{Timeout: time.Duration(pollTimeoutSecs) * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error().Err(err).Msg("telegram handler")
		},
	})
}

// Telegram hangs the router off a telebot instance. Each update is
// dispatched on its own goroutine by telebot itself.
type Telegram struct {
	bot *tele.Bot
	log zerolog.Logger
}

func NewTelegram(bot *tele.Bot, log zerolog.Logger) *Telegram {
	return &Telegram{bot: bot, log: log}
}

// Attach registers the command and plain-text handlers. Unknown slash
// commands fall through to the text handler and get rejected there.
func (t *Telegram) Attach(router *Router) {
	t.bot.Handle("/start", func(c tele.Context) error {
		name := ""
		if c.Sender() != nil {
			name = c.Sender().FirstName
		}
		return router.HandleStart(contextReplier{c}, name)
	})
	t.bot.Handle("/help", func(c tele.Context) error {
		return router.HandleHelp(contextReplier{c})
	})
	t.bot.Handle(tele.OnText, func(c tele.Context) error {
		// Handlers run to completion once begun; no cancellation is
		// threaded through from the poller.
		return router.HandleText(context.Background(), c.Text(), contextReplier{c})
	})
}

// Start blocks polling for updates until ctx is cancelled.
func (t *Telegram) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		t.bot.Stop()
	}()
	t.log.Info().Msg("telegram polling started")
	t.bot.Start()
}

// contextReplier sends text back into the chat an update came from.
type contextReplier struct {
	c tele.Context
}

func (r contextReplier) Reply(text string) error {
	return r.c.Send(text)
}

// GroupAnnouncer posts Markdown notices into a fixed group chat.
type GroupAnnouncer struct {
	bot  *tele.Bot
	chat tele.ChatID
}

func NewGroupAnnouncer(bot *tele.Bot, chatID int64) *GroupAnnouncer {
	return &GroupAnnouncer{bot: bot, chat: tele.ChatID(chatID)}
}

func (g *GroupAnnouncer) Announce(text string) error {
	_, err := g.bot.Send(g.chat, text, tele.ModeMarkdown)
	return err
}
