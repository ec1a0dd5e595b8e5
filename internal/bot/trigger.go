package bot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
)

// MsgTriggerFailed is the reply to a text trigger when no joke could be fetched.
const MsgTriggerFailed = "❌ Sorry, I couldn't fetch a joke right now!"

var (
	exactTriggers     = []string{"!joke", "dad joke"}
	substringTriggers = []string{"tell me a joke"}
)

// IsTrigger reports whether a plain-text message asks for a joke.
func IsTrigger(content string) bool {
	content = strings.ToLower(content)
	for _, t := range exactTriggers {
		if content == t {
			return true
		}
	}
	for _, t := range substringTriggers {
		if strings.Contains(content, t) {
			return true
		}
	}
	return false
}

// Listener answers plain-text joke requests outside the slash command system.
type Listener struct {
	handlerDeps
}

// NewListener creates a Listener that fetches jokes from src.
func NewListener(src JokeSource, opts ...Option) *Listener {
	return &Listener{handlerDeps: newDeps(src, opts)}
}

// Handle replies to msg with a random joke if it is a trigger phrase from a
// non-bot author. It reports whether the message was a trigger. Failures are
// logged and answered with MsgTriggerFailed.
func (l *Listener) Handle(ctx context.Context, msg MessageEvent, replier MessageReplier) (triggered bool) {
	if msg.AuthorIsBot || !IsTrigger(msg.Content) {
		return false
	}
	log := l.logger.With(zap.String("trigger", "text"), zap.String("request_id", msg.RequestID))

	defer func() {
		if p := recover(); p != nil {
			log.Error("panic handling text trigger", zap.Any("panic", p))
			l.sendFailure(ctx, log, replier)
			triggered = true
		}
	}()

	if err := l.replyWithJoke(ctx, replier); err != nil {
		log.Error("handling text trigger", zap.Error(err))
		l.sendFailure(ctx, log, replier)
	}
	return true
}

func (l *Listener) replyWithJoke(ctx context.Context, replier MessageReplier) error {
	joke, err := l.jokes.Random(ctx)
	if err != nil {
		return fmt.Errorf("fetching random joke: %w", err)
	}
	c := card.FormatJoke(*joke, "", l.now())
	if err := replier.ReplyInThread(ctx, Reply{Card: &c}); err != nil {
		return fmt.Errorf("replying: %w", err)
	}
	return nil
}

func (l *Listener) sendFailure(ctx context.Context, log *zap.Logger, replier MessageReplier) {
	if err := replier.ReplyInThread(ctx, Reply{Content: MsgTriggerFailed}); err != nil {
		log.Error("sending failure message", zap.Error(err))
	}
}
