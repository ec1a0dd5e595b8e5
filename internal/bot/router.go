package bot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
)

// User-facing messages.
const (
	MsgFetchFailed  = "❌ Sorry, I couldn't fetch a joke right now. Try again later!"
	MsgGenericError = "❌ An error occurred while processing your request."

	msgNotFoundFmt  = "❌ Couldn't find a joke with ID: `%s`. Please check the ID and try again."
	msgNoMatchesFmt = "❌ No jokes found for \"%s\". Try a different search term!"
)

// Search limits accepted from users.
const (
	MinSearchLimit     = 1
	MaxSearchLimit     = 10
	DefaultSearchLimit = 5
)

// MsgNotFound is the reply for an unknown joke ID.
func MsgNotFound(id string) string {
	return fmt.Sprintf(msgNotFoundFmt, id)
}

// MsgNoMatches is the reply for a search that found nothing.
func MsgNoMatches(term string) string {
	return fmt.Sprintf(msgNoMatchesFmt, term)
}

type commandHandler func(ctx context.Context, log *zap.Logger, ev CommandEvent, resp Responder) error

// Router maps slash commands to handlers. It holds no per-event state and
// is safe for concurrent use.
type Router struct {
	handlerDeps
	handlers map[CommandName]commandHandler
}

// NewRouter creates a Router that fetches jokes from src.
func NewRouter(src JokeSource, opts ...Option) *Router {
	r := &Router{handlerDeps: newDeps(src, opts)}
	r.handlers = map[CommandName]commandHandler{
		CommandJoke:   r.handleJoke,
		CommandJokeID: r.handleJokeID,
		CommandSearch: r.handleSearch,
		CommandHelp:   r.handleHelp,
	}
	return r
}

// Handles reports whether the router has a handler for name.
func (r *Router) Handles(name CommandName) bool {
	_, ok := r.handlers[name]
	return ok
}

// Handle runs the handler for ev. The event is acknowledged exactly once.
// Failures inside the handler, panics included, are logged and turned into
// MsgGenericError on whichever acknowledgement path is still open. The
// returned error is only informational; ErrReplyExpired marks a reply the
// platform refused because the token had timed out.
func (r *Router) Handle(ctx context.Context, ev CommandEvent, resp Responder) (err error) {
	log := r.logger.With(zap.String("command", string(ev.Name)), zap.String("request_id", ev.RequestID))

	h, ok := r.handlers[ev.Name]
	if !ok {
		log.Warn("ignoring unknown command")
		return fmt.Errorf("%w: %s", ErrUnknownCommand, ev.Name)
	}

	ack := &ackTracker{Responder: resp}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic handling %s: %v", ev.Name, p)
		}
		if err != nil {
			err = r.fail(ctx, log, ack, err)
		}
	}()

	log.Debug("handling command")
	return h(ctx, log, ev, ack)
}

// fail reports cause to the user if an acknowledgement path is still open.
func (r *Router) fail(ctx context.Context, log *zap.Logger, ack *ackTracker, cause error) error {
	if errors.Is(cause, ErrReplyExpired) {
		log.Warn("reply token expired before the response was sent", zap.Error(cause))
		return cause
	}
	log.Error("error handling command", zap.Error(cause))

	msg := Reply{Content: MsgGenericError}
	var sendErr error
	switch ack.state {
	case ackNone:
		sendErr = ack.Reply(ctx, msg)
	case ackDeferred:
		sendErr = ack.EditReply(ctx, msg)
	default:
		return cause
	}

	if errors.Is(sendErr, ErrReplyExpired) {
		log.Warn("reply token expired before the error message was sent", zap.Error(sendErr))
	} else if sendErr != nil {
		log.Error("sending error message", zap.Error(sendErr))
	}
	return cause
}

func (r *Router) handleJoke(ctx context.Context, log *zap.Logger, ev CommandEvent, resp Responder) error {
	if err := resp.Defer(ctx); err != nil {
		return fmt.Errorf("deferring reply: %w", err)
	}

	joke, err := r.jokes.Random(ctx)
	if err != nil {
		log.Warn("fetching random joke", zap.Error(err))
		return editReply(ctx, resp, Reply{Content: MsgFetchFailed})
	}

	c := card.FormatJoke(*joke, "", r.now())
	return editReply(ctx, resp, Reply{Card: &c})
}

func (r *Router) handleJokeID(ctx context.Context, log *zap.Logger, ev CommandEvent, resp Responder) error {
	if err := resp.Defer(ctx); err != nil {
		return fmt.Errorf("deferring reply: %w", err)
	}

	id := ev.StringOption(OptionID)
	joke, err := r.jokes.ByID(ctx, id)
	if err != nil {
		log.Warn("fetching joke by id", zap.String("joke_id", id), zap.Error(err))
		return editReply(ctx, resp, Reply{Content: MsgNotFound(id)})
	}

	c := card.FormatJoke(*joke, "", r.now())
	return editReply(ctx, resp, Reply{Card: &c})
}

func (r *Router) handleSearch(ctx context.Context, log *zap.Logger, ev CommandEvent, resp Responder) error {
	if err := resp.Defer(ctx); err != nil {
		return fmt.Errorf("deferring reply: %w", err)
	}

	term := ev.StringOption(OptionTerm)
	limit := searchLimit(ev)
	result, err := r.jokes.Search(ctx, term, limit)
	if err != nil {
		log.Warn("searching jokes", zap.String("term", term), zap.Error(err))
	}
	if err != nil || result.Empty() {
		return editReply(ctx, resp, Reply{Content: MsgNoMatches(term)})
	}

	c := card.FormatSearchResults(term, *result, limit, r.now())
	return editReply(ctx, resp, Reply{Card: &c})
}

// handleHelp replies immediately; no provider call is made so no deferral is needed.
func (r *Router) handleHelp(ctx context.Context, log *zap.Logger, ev CommandEvent, resp Responder) error {
	c := card.Help(r.avatar(), r.now())
	if err := resp.Reply(ctx, Reply{Card: &c}); err != nil {
		return fmt.Errorf("sending help: %w", err)
	}
	return nil
}

func editReply(ctx context.Context, resp Responder, r Reply) error {
	if err := resp.EditReply(ctx, r); err != nil {
		return fmt.Errorf("editing deferred reply: %w", err)
	}
	return nil
}

// SearchLimit normalizes a user-supplied search limit: 0 means
// DefaultSearchLimit, anything else is clamped to MinSearchLimit..MaxSearchLimit.
func SearchLimit(limit int64) int {
	if limit == 0 {
		return DefaultSearchLimit
	}
	return int(min(max(limit, MinSearchLimit), MaxSearchLimit))
}

// searchLimit reads the limit option and normalizes it with SearchLimit.
func searchLimit(ev CommandEvent) int {
	v, ok := ev.IntOption(OptionLimit)
	if !ok {
		return DefaultSearchLimit
	}
	return SearchLimit(v)
}

type ackState int

const (
	ackNone ackState = iota
	ackDeferred
	ackReplied
)

// ackTracker records which acknowledgement path a handler has taken.
type ackTracker struct {
	Responder
	state ackState
}

func (a *ackTracker) Defer(ctx context.Context) error {
	if err := a.Responder.Defer(ctx); err != nil {
		return err
	}
	a.state = ackDeferred
	return nil
}

func (a *ackTracker) Reply(ctx context.Context, r Reply) error {
	if err := a.Responder.Reply(ctx, r); err != nil {
		return err
	}
	a.state = ackReplied
	return nil
}
