// Package jokes provides a client for the icanhazdadjoke.com API.
package jokes

// Joke is a single joke as returned by the provider.
type Joke struct {
	ID     string `json:"id"`
	Joke   string `json:"joke"`
	Status int    `json:"status,omitempty"` // Echo of the HTTP status, ignored
}

// SearchResult is the response from the search endpoint.
type SearchResult struct {
	Results      []Joke `json:"results"`
	TotalJokes   int    `json:"total_jokes"`
	CurrentPage  int    `json:"current_page"`
	TotalPages   int    `json:"total_pages"`
	SearchTerm   string `json:"search_term,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	NextPage     int    `json:"next_page,omitempty"`
	PreviousPage int    `json:"previous_page,omitempty"`
}

// Empty reports whether the search matched nothing.
func (r *SearchResult) Empty() bool {
	return r == nil || len(r.Results) == 0
}
