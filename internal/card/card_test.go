package card

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFormatJoke(t *testing.T) {
	joke := jokes.Joke{
		ID:   "184",
		Joke: "Why did the scarecrow win an award? Because he was outstanding in his field.",
	}

	got := FormatJoke(joke, "", fixedNow)
	want := Card{
		Title:       "🤣 Dad Joke",
		Description: joke.Joke,
		Color:       Color,
		Footer: Footer{
			Text:    "ID: 184 | icanhazdadjoke.com",
			IconURL: ProviderIconURL,
		},
		Timestamp: fixedNow,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatJoke() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatJoke_SearchTitle(t *testing.T) {
	got := FormatJoke(jokes.Joke{ID: "1", Joke: "x"}, "cow", fixedNow)
	if got.Title != `🔍 Dad Joke (Search: "cow")` {
		t.Errorf("Title = %q", got.Title)
	}
}

func makeResults(n int) jokes.SearchResult {
	r := jokes.SearchResult{TotalJokes: n * 3, CurrentPage: 1, TotalPages: 3}
	for i := 0; i < n; i++ {
		r.Results = append(r.Results, jokes.Joke{ID: fmt.Sprintf("id%d", i), Joke: fmt.Sprintf("joke %d", i)})
	}
	return r
}

func TestFormatSearchResults_Caps(t *testing.T) {
	tests := []struct {
		name       string
		results    int
		limit      int
		wantFields int
	}{
		{"fewer results than limit", 2, 5, 2},
		{"limit applied", 20, 3, 3},
		{"default limit", 20, 0, DefaultDisplayLimit},
		{"hard cap", 30, 30, MaxDisplayResults},
		{"caller asks for 1000", 30, 1000, MaxDisplayResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FormatSearchResults("joke", makeResults(tt.results), tt.limit, fixedNow)
			if len(c.Fields) != tt.wantFields {
				t.Errorf("got %d fields, want %d", len(c.Fields), tt.wantFields)
			}
			wantDesc := fmt.Sprintf("Found %d joke(s). Showing %d:", tt.results*3, tt.wantFields)
			if c.Description != wantDesc {
				t.Errorf("Description = %q, want %q", c.Description, wantDesc)
			}
		})
	}
}

func TestFormatSearchResults_Fields(t *testing.T) {
	c := FormatSearchResults("joke", makeResults(2), 5, fixedNow)

	want := []Field{
		{Name: "1. ID: id0", Value: "joke 0"},
		{Name: "2. ID: id1", Value: "joke 1"},
	}
	if diff := cmp.Diff(want, c.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if c.Title != `🔍 Dad Jokes Search: "joke"` {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Footer.Text != "Page 1 of 3 | icanhazdadjoke.com" {
		t.Errorf("Footer = %q", c.Footer.Text)
	}
}

func TestFormatSearchResults_TruncatesLongJokes(t *testing.T) {
	r := jokes.SearchResult{Results: []jokes.Joke{{ID: "long", Joke: strings.Repeat("ha", 600)}}}

	c := FormatSearchResults("ha", r, 1, fixedNow)
	if n := len([]rune(c.Fields[0].Value)); n != MaxFieldValueLen {
		t.Errorf("field value has %d runes, want %d", n, MaxFieldValueLen)
	}
	if !strings.HasSuffix(c.Fields[0].Value, "...") {
		t.Error("truncated value should end with ...")
	}
}

func TestHelp(t *testing.T) {
	c := Help("https://cdn.example/avatar.png", fixedNow)

	if c.Thumbnail != "https://cdn.example/avatar.png" {
		t.Errorf("Thumbnail = %q", c.Thumbnail)
	}

	var names []string
	for _, f := range c.Fields {
		names = append(names, f.Name)
		if f.Value == "" {
			t.Errorf("field %q has empty value", f.Name)
		}
	}
	for _, cmd := range []string{"/joke", "/jokeid <id>", "/search <term> [limit]", "/help"} {
		found := false
		for _, n := range names {
			if n == cmd {
				found = true
			}
		}
		if !found {
			t.Errorf("help card missing command %q", cmd)
		}
	}
	if !strings.Contains(c.Fields[len(c.Fields)-1].Value, ProviderURL) {
		t.Error("help card should link to the provider")
	}
}

func TestDisplayLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 5}, {0, 5}, {1, 1}, {5, 5}, {10, 10}, {11, 10},
	}
	for _, tt := range tests {
		if got := DisplayLimit(tt.in); got != tt.want {
			t.Errorf("DisplayLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
