// Package catalog assembles the podcasts of the configured feeds into a feed.Catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/log"
	"github.com/sirupsen/logrus"
)

// Source fetches a single feed. *feed.Fetcher satisfies it.
type Source interface {
	Fetch(ctx context.Context, url string) (*feed.Podcast, error)
}

// Progress is reported after every feed, successful or not.
type Progress struct {
	Done   int
	Total  int
	URL    string
	Cached bool
	Err    error
}

// Builder fetches feeds one after another, in input order.
// A feed that fails is reported and left out; the others are still fetched.
type Builder struct {
	source Source
	cache  *Cache

	// OnProgress is called after each feed. Optional.
	OnProgress func(Progress)
}

// NewBuilder returns a Builder fetching from source.
func NewBuilder(source Source) *Builder {
	return &Builder{source: source}
}

// WithCache makes the builder consult and refresh c around every fetch.
func (b *Builder) WithCache(c *Cache) *Builder {
	b.cache = c
	return b
}

// Build returns the catalog of every feed that could be fetched, in the
// order of urls, together with the failures of the ones that could not.
func (b *Builder) Build(ctx context.Context, urls []string) (*feed.Catalog, []*feed.FetchError) {
	var (
		catalog  = &feed.Catalog{}
		failures []*feed.FetchError
	)

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			for _, rest := range urls[i:] {
				failures = append(failures, &feed.FetchError{URL: rest, Err: err})
			}
			break
		}

		podcast, cached, err := b.fetch(ctx, url)
		if err != nil {
			log.Fields(logrus.Fields{"feed": url}).Error(err)
			failures = append(failures, err)
		} else {
			catalog.Podcasts = append(catalog.Podcasts, podcast)
		}

		if b.OnProgress != nil {
			progress := Progress{Done: i + 1, Total: len(urls), URL: url, Cached: cached}
			if err != nil {
				progress.Err = err
			}
			b.OnProgress(progress)
		}
	}

	log.Infof("catalog built: %d of %d feeds, %d episodes", len(catalog.Podcasts), len(urls), catalog.EpisodeCount())
	return catalog, failures
}

func (b *Builder) fetch(ctx context.Context, url string) (*feed.Podcast, bool, *feed.FetchError) {
	if b.cache != nil {
		if podcast, ok := b.cache.Get(url).Get(); ok {
			log.Debugf("using cached feed %s", url)
			return podcast, true, nil
		}
	}

	podcast, err := b.source.Fetch(ctx, url)
	if err != nil {
		var fetchErr *feed.FetchError
		if !errors.As(err, &fetchErr) {
			fetchErr = &feed.FetchError{URL: url, Err: err}
		}
		return nil, false, fetchErr
	}

	if b.cache != nil {
		if err := b.cache.Put(podcast); err != nil {
			log.Warnf("caching %s: %v", url, err)
		}
	}

	return podcast, false, nil
}
