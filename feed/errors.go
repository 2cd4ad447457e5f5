package feed

import "fmt"

// FetchError reports a feed that could not be retrieved or parsed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MalformedEntryError reports a feed item that carries neither an enclosure
// nor a second link to use as its media locator.
type MalformedEntryError struct {
	FeedURL string
	Title   string
	Links   int
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry %q of %s has no media link (%d links)", e.Title, e.FeedURL, e.Links)
}
