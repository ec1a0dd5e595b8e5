package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTrigger(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"!joke", true},
		{"!JOKE", true},
		{"dad joke", true},
		{"Dad Joke", true},
		{"tell me a joke", true},
		{"hey bot, Tell Me A Joke please", true},
		{"!joke please", false},
		{"a dad joke", false},
		{"joke", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrigger(tt.content))
		})
	}
}

func TestListener_RepliesWithJoke(t *testing.T) {
	src := &fakeJokes{random: &scarecrow}
	replier := &fakeReplier{}

	triggered := NewListener(src, WithClock(fixedClock)).Handle(context.Background(), MessageEvent{Content: "Dad joke"}, replier)

	assert.True(t, triggered)
	require.Len(t, replier.replies, 1)
	c := replier.replies[0].Card
	require.NotNil(t, c)
	assert.Equal(t, scarecrow.Joke, c.Description)
	assert.Equal(t, fixedNow, c.Timestamp)
}

func TestListener_IgnoresBots(t *testing.T) {
	src := &fakeJokes{random: &scarecrow}
	replier := &fakeReplier{}

	triggered := NewListener(src).Handle(context.Background(), MessageEvent{Content: "!joke", AuthorIsBot: true}, replier)

	assert.False(t, triggered)
	assert.Empty(t, replier.replies)
	assert.Equal(t, 0, src.callCount())
}

func TestListener_IgnoresOtherMessages(t *testing.T) {
	src := &fakeJokes{random: &scarecrow}
	replier := &fakeReplier{}

	triggered := NewListener(src).Handle(context.Background(), MessageEvent{Content: "good morning"}, replier)

	assert.False(t, triggered)
	assert.Empty(t, replier.replies)
	assert.Equal(t, 0, src.callCount())
}

func TestListener_ProviderFailure(t *testing.T) {
	replier := &fakeReplier{}

	triggered := NewListener(&fakeJokes{}).Handle(context.Background(), MessageEvent{Content: "!joke"}, replier)

	assert.True(t, triggered)
	assert.Equal(t, []Reply{{Content: MsgTriggerFailed}}, replier.replies)
}

func TestListener_Panic(t *testing.T) {
	replier := &fakeReplier{}

	triggered := NewListener(&fakeJokes{panicMsg: "kaboom"}).Handle(context.Background(), MessageEvent{Content: "!joke"}, replier)

	assert.True(t, triggered)
	assert.Equal(t, []Reply{{Content: MsgTriggerFailed}}, replier.replies)
}

func TestListener_ReplyFailure(t *testing.T) {
	replier := &fakeReplier{err: errors.New("missing permissions")}

	triggered := NewListener(&fakeJokes{random: &scarecrow}).Handle(context.Background(), MessageEvent{Content: "!joke"}, replier)

	assert.True(t, triggered)
	// The card failed, then the failure string was attempted.
	require.Len(t, replier.replies, 2)
	assert.Equal(t, MsgTriggerFailed, replier.replies[1].Content)
}
