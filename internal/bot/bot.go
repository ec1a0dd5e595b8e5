package bot

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Intents the bot needs: guild commands plus message content for text triggers.
const Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

// ListeningStatus is the presence shown once connected.
const ListeningStatus = "dad jokes | /joke"

// EventKind names a gateway event the bot reacts to.
type EventKind string

// Gateway events in the dispatch table.
const (
	EventReady             EventKind = "ready"
	EventInteractionCreate EventKind = "interactionCreate"
	EventMessageCreate     EventKind = "messageCreate"
)

// NewSession creates a Discord session for a bot token without connecting.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	s.Identify.Intents = Intents
	return s, nil
}

// Bot wires an explicitly constructed session to the router and listener.
type Bot struct {
	session  *discordgo.Session
	router   *Router
	listener *Listener
	logger   *zap.Logger
	guildID  string
	avatar   atomic.Pointer[string]
}

// BotOption configures a Bot.
type BotOption func(*Bot)

// WithGuild registers commands in one guild instead of globally.
// Guild commands update instantly, which is convenient during development.
func WithGuild(guildID string) BotOption {
	return func(b *Bot) {
		b.guildID = guildID
	}
}

// WithBotLogger sets the logger for the bot and its handlers.
func WithBotLogger(l *zap.Logger) BotOption {
	return func(b *Bot) {
		b.logger = l
	}
}

// New creates a Bot. Handlers fetch jokes from src.
func New(session *discordgo.Session, src JokeSource, opts ...BotOption) *Bot {
	b := &Bot{
		session: session,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.router = NewRouter(src, WithLogger(b.logger), WithAvatar(b.avatarURL))
	b.listener = NewListener(src, WithLogger(b.logger))
	return b
}

func (b *Bot) avatarURL() string {
	if p := b.avatar.Load(); p != nil {
		return *p
	}
	return ""
}

// dispatchTable maps each gateway event to its handler. Handlers run with ctx.
func (b *Bot) dispatchTable(ctx context.Context) map[EventKind]any {
	return map[EventKind]any{
		EventReady: func(s *discordgo.Session, r *discordgo.Ready) {
			b.onReady(ctx, s, r)
		},
		EventInteractionCreate: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			b.onInteractionCreate(ctx, s, i)
		},
		EventMessageCreate: func(s *discordgo.Session, m *discordgo.MessageCreate) {
			b.onMessageCreate(ctx, s, m)
		},
	}
}

// Run connects to Discord and serves events until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	for kind, h := range b.dispatchTable(ctx) {
		remove := b.session.AddHandler(h)
		defer remove()
		b.logger.Debug("registered event handler", zap.String("event", string(kind)))
	}

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}
	b.logger.Info("discord session open")

	<-ctx.Done()

	b.logger.Info("closing discord session")
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("closing discord session: %w", err)
	}
	return nil
}

func (b *Bot) onReady(ctx context.Context, s *discordgo.Session, r *discordgo.Ready) {
	avatar := r.User.AvatarURL("")
	b.avatar.Store(&avatar)
	b.logger.Info("bot is online", zap.String("user", r.User.String()), zap.Int("guilds", len(r.Guilds)))

	if err := s.UpdateListeningStatus(ListeningStatus); err != nil {
		b.logger.Warn("setting presence", zap.Error(err))
	}

	appID := r.User.ID
	if r.Application != nil && r.Application.ID != "" {
		appID = r.Application.ID
	}
	b.registerCommands(ctx, s, appID)
}

// registerCommands overwrites the bot's slash commands. Failure is logged and
// not fatal: text triggers and previously registered commands keep working.
func (b *Bot) registerCommands(ctx context.Context, s *discordgo.Session, appID string) {
	b.logger.Info("registering slash commands", zap.String("guild_id", b.guildID))
	registered, err := s.ApplicationCommandBulkOverwrite(appID, b.guildID, Commands(), discordgo.WithContext(ctx))
	if err != nil {
		b.logger.Error("registering slash commands", zap.Error(err))
		return
	}
	b.logger.Info("slash commands registered", zap.Int("count", len(registered)))
}

func (b *Bot) onInteractionCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	ev := EventFromInteraction(i.ApplicationCommandData())
	ev.RequestID = uuid.NewString()

	// Errors are logged by the router.
	_ = b.router.Handle(ctx, ev, newInteractionResponder(s, i.Interaction))
}

func (b *Bot) onMessageCreate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	ev := MessageEvent{
		Content:     m.Content,
		AuthorIsBot: m.Author.Bot,
		RequestID:   m.ID,
	}
	b.listener.Handle(ctx, ev, newMessageReplier(s, m.Message))
}
