package feed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/network"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Parser retrieves and parses a feed. *gofeed.Parser satisfies it.
type Parser interface {
	ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error)
}

// Fetcher turns feed URLs into podcasts.
type Fetcher struct {
	parser  Parser
	timeout time.Duration

	// OnMalformed is called for every skipped entry. Optional.
	OnMalformed func(*MalformedEntryError)
}

// NewFetcher returns a Fetcher backed by gofeed over the shared network client.
// A zero timeout leaves the deadline to the caller's context.
func NewFetcher(timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = network.Client
	parser.UserAgent = constant.UserAgent
	return NewFetcherWithParser(parser, timeout)
}

// NewFetcherWithParser returns a Fetcher using a custom parser.
func NewFetcherWithParser(parser Parser, timeout time.Duration) *Fetcher {
	return &Fetcher{parser: parser, timeout: timeout}
}

// Fetch retrieves the feed at url. Failures are returned as *FetchError.
// Malformed entries are skipped and reported through OnMalformed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Podcast, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if parsed == nil {
		return nil, &FetchError{URL: url, Err: errors.New("empty feed")}
	}

	podcast, malformed := FromFeed(url, parsed)
	for _, m := range malformed {
		log.Fields(logrus.Fields{"feed": url, "entry": m.Title}).Warn("skipping entry without media link")
		if f.OnMalformed != nil {
			f.OnMalformed(m)
		}
	}

	log.Infof("fetched %s: %d episodes", url, len(podcast.Episodes))
	return podcast, nil
}

// FromFeed converts a parsed feed into a Podcast, collecting entries that
// have no usable media locator instead of failing the whole feed.
func FromFeed(url string, parsed *gofeed.Feed) (*Podcast, []*MalformedEntryError) {
	podcast := &Podcast{
		Title: strings.TrimSpace(parsed.Title),
		URL:   url,
	}
	if podcast.Title == "" {
		podcast.Title = url
	}

	var malformed []*MalformedEntryError
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		media, ok := MediaURL(item)
		if !ok {
			malformed = append(malformed, &MalformedEntryError{
				FeedURL: url,
				Title:   title,
				Links:   len(item.Links),
			})
			continue
		}

		podcast.Episodes = append(podcast.Episodes, &Episode{Title: title, MediaURL: media})
	}

	return podcast, malformed
}

// MediaURL resolves the media locator of an item: the first labeled
// enclosure, otherwise the second positional link (page link first, media second).
func MediaURL(item *gofeed.Item) (string, bool) {
	enclosure, ok := lo.Find(item.Enclosures, func(e *gofeed.Enclosure) bool {
		return e != nil && strings.TrimSpace(e.URL) != ""
	})
	if ok {
		return strings.TrimSpace(enclosure.URL), true
	}

	if len(item.Links) >= 2 && strings.TrimSpace(item.Links[1]) != "" {
		return strings.TrimSpace(item.Links[1]), true
	}

	return "", false
}
