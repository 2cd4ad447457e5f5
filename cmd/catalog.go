package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/podspy-cli/podspy/catalog"
	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/download"
	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/key"
	"github.com/podspy-cli/podspy/style"
	"github.com/podspy-cli/podspy/util"
	"github.com/podspy-cli/podspy/where"
	"github.com/spf13/viper"
)

// problems collects what went wrong during a build so it can be printed after the progress line.
type problems struct {
	failures  []*feed.FetchError
	malformed []*feed.MalformedEntryError
}

func (p *problems) addMalformed(err *feed.MalformedEntryError) {
	p.malformed = append(p.malformed, err)
}

// report prints one warning line per skipped entry and per failed feed.
func (p *problems) report(w io.Writer) {
	for _, m := range p.malformed {
		_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), style.Fg(color.Yellow)("skipped "+m.Error()))
	}

	for _, failure := range p.failures {
		_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), style.Fg(color.Yellow)(failure.Error()))
	}
}

// newBuilder returns a catalog builder configured from viper.
// Skipped entries are collected into p.
func newBuilder(p *problems) *catalog.Builder {
	fetcher := feed.NewFetcher(time.Duration(viper.GetInt(key.FeedsTimeout)) * time.Second)
	fetcher.OnMalformed = p.addMalformed

	builder := catalog.NewBuilder(fetcher)
	if viper.GetBool(key.FeedsCache) {
		lifetime := time.Duration(viper.GetInt(key.FeedsCacheLifetime)) * time.Minute
		builder = builder.WithCache(catalog.NewCache(where.Feeds(), lifetime))
	}

	return builder
}

// buildCatalog fetches urls while printing an erasable progress line.
func buildCatalog(ctx context.Context, urls []string) (*feed.Catalog, *problems) {
	found := &problems{}
	builder := newBuilder(found)

	erase := func() {}
	if len(urls) > 0 {
		erase = util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), util.Quantify(len(urls), "feed", "feeds")))
	}

	builder.OnProgress = func(p catalog.Progress) {
		erase()
		if p.Done == p.Total {
			erase = func() {}
			return
		}
		erase = util.PrintErasable(fmt.Sprintf("%s Fetching feeds %d/%d...", icon.Get(icon.Progress), p.Done+1, p.Total))
	}

	c, failures := builder.Build(ctx, urls)
	erase()
	found.failures = failures
	return c, found
}

// downloadProgress prints the transferred size of the current download on a single line,
// ending it once done reaches total.
func downloadProgress(w io.Writer) download.ProgressFunc {
	return func(done, total int64) {
		line := fmt.Sprintf("%s Downloading %s", icon.Get(icon.Download), humanize.Bytes(uint64(done)))
		if total > 0 {
			line += fmt.Sprintf(" / %s (%.0f%%)", humanize.Bytes(uint64(total)), float64(done)/float64(total)*100)
		}
		_, _ = fmt.Fprintf(w, "\r%s", line)
		if total > 0 && done >= total {
			_, _ = fmt.Fprintln(w)
		}
	}
}
