package models

const (
	noHeadlineText          = "No recent headlines found."
	unavailableHeadlineText = "Could not fetch news."
)

// Headline is the most recent news item found for a ticker
type Headline struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// NoHeadline is returned when the news page has no usable headline
func NoHeadline() Headline {
	return Headline{Headline: noHeadlineText, URL: ""}
}

// UnavailableHeadline is returned when the news page could not be fetched or parsed
func UnavailableHeadline() Headline {
	return Headline{Headline: unavailableHeadlineText, URL: ""}
}
