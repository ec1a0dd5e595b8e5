package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
)

// Discord JSON error codes that mean the reply slot is gone.
const (
	codeUnknownWebhook     = 10015
	codeUnknownInteraction = 10062
)

// interactionAPI is the part of *discordgo.Session used to answer interactions.
type interactionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// messageAPI is the part of *discordgo.Session used to answer messages.
type messageAPI interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// interactionResponder implements Responder for one Discord interaction.
type interactionResponder struct {
	api         interactionAPI
	interaction *discordgo.Interaction
}

func newInteractionResponder(api interactionAPI, i *discordgo.Interaction) *interactionResponder {
	return &interactionResponder{api: api, interaction: i}
}

func (r *interactionResponder) Defer(ctx context.Context) error {
	err := r.api.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	return mapRESTError(err)
}

func (r *interactionResponder) Reply(ctx context.Context, rep Reply) error {
	data := &discordgo.InteractionResponseData{Content: rep.Content}
	if rep.Card != nil {
		data.Embeds = []*discordgo.MessageEmbed{ToEmbed(*rep.Card)}
	}
	err := r.api.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
	return mapRESTError(err)
}

func (r *interactionResponder) EditReply(ctx context.Context, rep Reply) error {
	edit := &discordgo.WebhookEdit{}
	if rep.Card != nil {
		embeds := []*discordgo.MessageEmbed{ToEmbed(*rep.Card)}
		edit.Embeds = &embeds
	} else {
		content := rep.Content
		edit.Content = &content
	}
	_, err := r.api.InteractionResponseEdit(r.interaction, edit, discordgo.WithContext(ctx))
	return mapRESTError(err)
}

// messageReplier implements MessageReplier for one Discord message.
type messageReplier struct {
	api     messageAPI
	message *discordgo.Message
}

func newMessageReplier(api messageAPI, m *discordgo.Message) *messageReplier {
	return &messageReplier{api: api, message: m}
}

func (r *messageReplier) ReplyInThread(ctx context.Context, rep Reply) error {
	send := &discordgo.MessageSend{
		Content:   rep.Content,
		Reference: r.message.Reference(),
	}
	if rep.Card != nil {
		send.Embeds = []*discordgo.MessageEmbed{ToEmbed(*rep.Card)}
	}
	if _, err := r.api.ChannelMessageSendComplex(r.message.ChannelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("sending reply to channel %s: %w", r.message.ChannelID, err)
	}
	return nil
}

// mapRESTError wraps Discord's unknown interaction/webhook errors in ErrReplyExpired.
func mapRESTError(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case codeUnknownInteraction, codeUnknownWebhook:
			return fmt.Errorf("%w: %v", ErrReplyExpired, err)
		}
	}
	return err
}

// ToEmbed converts a card into a Discord embed.
func ToEmbed(c card.Card) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       c.Title,
		Description: c.Description,
		Color:       c.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    c.Footer.Text,
			IconURL: c.Footer.IconURL,
		},
	}
	if !c.Timestamp.IsZero() {
		e.Timestamp = c.Timestamp.Format(time.RFC3339)
	}
	if c.Thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.Thumbnail}
	}
	for _, f := range c.Fields {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return e
}
