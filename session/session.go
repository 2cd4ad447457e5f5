// Package session implements the interactive command loop over a podcast catalog.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/search"
	"github.com/podspy-cli/podspy/style"
	"github.com/samber/mo"
)

// Acquirer resolves an episode to a local file.
type Acquirer interface {
	Acquire(ctx context.Context, episode *feed.Episode) (string, error)
}

// Launcher hands a local file to a media player.
type Launcher interface {
	Play(path string) error
}

// Pager displays a numbered listing.
type Pager interface {
	Page(title string, items []string) error
}

type Options struct {
	// DefaultToFirst makes sele play the first episode when its argument is not a number.
	DefaultToFirst bool
	// ShowHelp prints the command table when the session starts.
	ShowHelp bool
}

type Session struct {
	catalog  *feed.Catalog
	acquirer Acquirer
	launcher Launcher
	pager    Pager
	options  Options

	out io.Writer

	selectedPodcasts []*feed.Podcast
	selectedEpisodes []*feed.Episode
	// selectedPodcast is 1-based and may point outside selectedPodcasts after a new sp.
	selectedPodcast mo.Option[int]
}

func New(catalog *feed.Catalog, acquirer Acquirer, launcher Launcher, pager Pager, options Options) *Session {
	return &Session{
		catalog:          catalog,
		acquirer:         acquirer,
		launcher:         launcher,
		pager:            pager,
		options:          options,
		selectedPodcasts: catalog.Podcasts,
		selectedEpisodes: search.EpisodesAcross(catalog.Podcasts, ""),
		selectedPodcast:  mo.None[int](),
	}
}

// SelectedPodcasts returns the result of the last podcast search.
func (s *Session) SelectedPodcasts() []*feed.Podcast {
	return s.selectedPodcasts
}

// SelectedEpisodes returns the result of the last episode search.
func (s *Session) SelectedEpisodes() []*feed.Episode {
	return s.selectedEpisodes
}

// SelectedPodcast returns the podcast chosen with selp, if it is still within the current search results.
func (s *Session) SelectedPodcast() mo.Option[*feed.Podcast] {
	n, ok := s.selectedPodcast.Get()
	if !ok || n < 1 || n > len(s.selectedPodcasts) {
		return mo.None[*feed.Podcast]()
	}

	return mo.Some(s.selectedPodcasts[n-1])
}

// Run reads commands from in until q, end of input or context cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.out = out

	if s.options.ShowHelp {
		s.printHelp()
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, s.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		name, arg, ok := parse(scanner.Text())
		if !ok {
			continue
		}

		if name == "q" {
			log.Info("session ended")
			return nil
		}

		s.dispatch(ctx, name, arg)
		fmt.Fprintln(out)
	}
}

// prompt shows the selected podcast. An index left outside the current results by sp
// is shown as such, since se does nothing until selp picks again.
func (s *Session) prompt() string {
	n, ok := s.selectedPodcast.Get()
	switch {
	case !ok:
		return style.Prompt("No podcast selected", false) + " >> "
	case n > len(s.selectedPodcasts):
		return style.Prompt(fmt.Sprintf("Podcast %d not in results, use selp", n), false) + " >> "
	default:
		return style.Prompt(s.selectedPodcasts[n-1].Title, true) + " >> "
	}
}

// parse splits a line into the command token and the remaining tokens joined by single spaces.
func parse(line string) (name, arg string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", false
	}

	return fields[0], strings.Join(fields[1:], " "), true
}
