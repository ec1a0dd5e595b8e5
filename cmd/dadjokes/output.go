package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

// Text wrapping widths for human output.
const (
	TextWrapWidth = 68
	ResultIndent  = "   "
)

// outputJSON writes a value as formatted JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ErrorResponse is the JSON shape of a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
}

// reportError writes a command error to w as JSON, or as plain text when
// human is set.
func reportError(w io.Writer, err error, human bool) {
	if human {
		fmt.Fprintf(w, "Error: %s\n", err)
		return
	}
	if encErr := outputJSON(w, ErrorResponse{Error: err.Error()}); encErr != nil {
		fmt.Fprintf(w, "Error: %s\n", err)
	}
}

// printJokeHuman writes a joke as wrapped text followed by its ID.
func printJokeHuman(w io.Writer, j *jokes.Joke) {
	fmt.Fprintln(w, wrapText(j.Joke, TextWrapWidth, ""))
	fmt.Fprintf(w, "\n  id: %s\n", j.ID)
}

// printSearchHuman writes search results as a numbered list.
func printSearchHuman(w io.Writer, term string, r *jokes.SearchResult) {
	if r.Empty() {
		fmt.Fprintf(w, "No jokes found for %q\n", term)
		return
	}
	fmt.Fprintf(w, "Found %d joke(s) for %q (page %d of %d)\n\n", r.TotalJokes, term, r.CurrentPage, r.TotalPages)
	for i, j := range r.Results {
		fmt.Fprintf(w, "%2d. %s\n", i+1, wrapText(j.Joke, TextWrapWidth, ResultIndent+" "))
		fmt.Fprintf(w, "%s id: %s\n\n", ResultIndent, j.ID)
	}
}

// printCardHuman writes a card the way a plain-text client would show it.
func printCardHuman(w io.Writer, c card.Card) {
	fmt.Fprintln(w, c.Title)
	fmt.Fprintln(w, strings.Repeat("=", min(len([]rune(c.Title)), TextWrapWidth)))
	if c.Description != "" {
		fmt.Fprintln(w, wrapText(c.Description, TextWrapWidth, ""))
	}
	for _, f := range c.Fields {
		fmt.Fprintf(w, "\n%s\n%s%s\n", f.Name, ResultIndent, wrapText(f.Value, TextWrapWidth, ResultIndent))
	}
	fmt.Fprintf(w, "\n-- %s\n", c.Footer.Text)
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n"+indent)
}
