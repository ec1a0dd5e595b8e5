// Package bot routes chat platform events to the joke provider and replies
// with formatted cards.
package bot

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

// CommandName identifies a slash command.
type CommandName string

// Slash commands handled by the bot.
const (
	CommandJoke   CommandName = "joke"
	CommandJokeID CommandName = "jokeid"
	CommandSearch CommandName = "search"
	CommandHelp   CommandName = "help"
)

// Command option names.
const (
	OptionID    = "id"
	OptionTerm  = "term"
	OptionLimit = "limit"
)

var (
	// ErrReplyExpired is returned by a Responder when the platform no longer
	// accepts replies for the event (the interaction token timed out).
	ErrReplyExpired = errors.New("reply token expired")

	// ErrUnknownCommand is returned for commands with no handler.
	ErrUnknownCommand = errors.New("unknown command")
)

// CommandEvent is one inbound slash command. It is consumed once and discarded.
type CommandEvent struct {
	Name      CommandName
	Options   map[string]any
	RequestID string
}

// StringOption returns a string option, or "" if it is absent or not a string.
func (e CommandEvent) StringOption(name string) string {
	s, _ := e.Options[name].(string)
	return s
}

// IntOption returns an integer option and whether it was present.
func (e CommandEvent) IntOption(name string) (int64, bool) {
	switch v := e.Options[name].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// Reply is an outbound message: plain text or a card, never both.
type Reply struct {
	Content string
	Card    *card.Card
}

// Responder is the acknowledgement capability the platform hands out for a
// single command event. Either Reply is called once, or Defer is called once
// followed by EditReply.
type Responder interface {
	// Defer acknowledges the event and reserves a reply slot for later.
	Defer(ctx context.Context) error
	// Reply acknowledges the event with an immediate response.
	Reply(ctx context.Context, r Reply) error
	// EditReply fills the slot reserved by Defer.
	EditReply(ctx context.Context, r Reply) error
}

// MessageEvent is one inbound plain-text message.
type MessageEvent struct {
	Content     string
	AuthorIsBot bool
	RequestID   string
}

// MessageReplier answers a plain-text message in its thread.
type MessageReplier interface {
	ReplyInThread(ctx context.Context, r Reply) error
}

// JokeSource is the provider the handlers fetch jokes from.
type JokeSource interface {
	Random(ctx context.Context) (*jokes.Joke, error)
	ByID(ctx context.Context, id string) (*jokes.Joke, error)
	Search(ctx context.Context, term string, limit int) (*jokes.SearchResult, error)
}

// handlerDeps are the collaborators shared by the router and the listener.
type handlerDeps struct {
	jokes  JokeSource
	now    func() time.Time
	logger *zap.Logger
	avatar func() string
}

// Option configures a Router or Listener.
type Option func(*handlerDeps)

// WithClock sets the clock used for card timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *handlerDeps) {
		d.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *handlerDeps) {
		d.logger = l
	}
}

// WithAvatar sets the source of the bot's avatar URL shown on the help card.
func WithAvatar(avatar func() string) Option {
	return func(d *handlerDeps) {
		d.avatar = avatar
	}
}

func newDeps(src JokeSource, opts []Option) handlerDeps {
	d := handlerDeps{
		jokes:  src,
		now:    time.Now,
		logger: zap.NewNop(),
		avatar: func() string { return "" },
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
