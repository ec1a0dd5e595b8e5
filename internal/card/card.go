// Package card renders jokes into platform-neutral display cards.
package card

import (
	"fmt"
	"time"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

const (
	// Color is the accent color of every card (gold).
	Color = 0xFFD700

	// ProviderName is shown in footers as attribution.
	ProviderName = "icanhazdadjoke.com"

	// ProviderURL links to the joke provider.
	ProviderURL = "https://icanhazdadjoke.com"

	// ProviderIconURL is the footer icon on joke cards.
	ProviderIconURL = "https://icanhazdadjoke.com/static/smile.svg"

	// MaxDisplayResults caps how many search results a card shows.
	MaxDisplayResults = 10

	// DefaultDisplayLimit is used when no display limit is requested.
	DefaultDisplayLimit = 5

	// MaxFieldValueLen is the platform limit on field values, in runes.
	MaxFieldValueLen = 1024

	// blankField renders an empty field value on platforms that reject "".
	blankField = "\u200b"
)

// Card is a structured message body rendered by the chat platform.
type Card struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Color       int       `json:"color"`
	Fields      []Field   `json:"fields,omitempty"`
	Footer      Footer    `json:"footer"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Field is one name/value row of a card.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Footer is the small print at the bottom of a card.
type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// FormatJoke builds the card for a single joke. A non-empty searchTerm
// switches to the search title variant.
func FormatJoke(joke jokes.Joke, searchTerm string, now time.Time) Card {
	title := "🤣 Dad Joke"
	if searchTerm != "" {
		title = fmt.Sprintf("🔍 Dad Joke (Search: \"%s\")", searchTerm)
	}

	return Card{
		Title:       title,
		Description: joke.Joke,
		Color:       Color,
		Footer: Footer{
			Text:    fmt.Sprintf("ID: %s | %s", joke.ID, ProviderName),
			IconURL: ProviderIconURL,
		},
		Timestamp: now,
	}
}

// DisplayLimit returns how many results a search card shows for a requested limit.
func DisplayLimit(limit int) int {
	if limit <= 0 {
		return DefaultDisplayLimit
	}
	return min(limit, MaxDisplayResults)
}

// FormatSearchResults builds the card for a search result set. At most
// DisplayLimit(limit) jokes are rendered, whatever the provider returned.
func FormatSearchResults(term string, result jokes.SearchResult, limit int, now time.Time) Card {
	shown := result.Results
	if n := DisplayLimit(limit); len(shown) > n {
		shown = shown[:n]
	}

	fields := make([]Field, len(shown))
	for i, j := range shown {
		fields[i] = Field{
			Name:  fmt.Sprintf("%d. ID: %s", i+1, j.ID),
			Value: truncate(j.Joke, MaxFieldValueLen),
		}
	}

	return Card{
		Title:       fmt.Sprintf("🔍 Dad Jokes Search: \"%s\"", term),
		Description: fmt.Sprintf("Found %d joke(s). Showing %d:", result.TotalJokes, len(shown)),
		Color:       Color,
		Fields:      fields,
		Footer: Footer{
			Text: fmt.Sprintf("Page %d of %d | %s", result.CurrentPage, result.TotalPages, ProviderName),
		},
		Timestamp: now,
	}
}

// Help builds the static help card. The bot's own avatar is the only dynamic part.
func Help(avatarURL string, now time.Time) Card {
	return Card{
		Title:       "🤖 DadJokes Bot Help",
		Description: "A Discord bot that brings you the best dad jokes from icanhazdadjoke.com!",
		Color:       Color,
		Fields: []Field{
			{Name: "📝 Commands", Value: blankField},
			{Name: "/joke", Value: "Get a random dad joke", Inline: true},
			{Name: "/jokeid <id>", Value: "Get a specific joke by ID", Inline: true},
			{Name: "/search <term> [limit]", Value: "Search for jokes (1-10 results)", Inline: true},
			{Name: "/help", Value: "Show this help message", Inline: true},
			{Name: "🔗 Links", Value: fmt.Sprintf("[%s](%s)", ProviderName, ProviderURL)},
		},
		Thumbnail: avatarURL,
		Footer:    Footer{Text: "Made with ❤️ using icanhazdadjoke.com API"},
		Timestamp: now,
	}
}

// truncate shortens s to at most maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
