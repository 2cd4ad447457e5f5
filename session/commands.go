package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/search"
	"github.com/podspy-cli/podspy/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

type command struct {
	name, usage, description string
	run                      func(s *Session, ctx context.Context, arg string)
}

var commands []command

func init() {
	commands = []command{
		{"sp", "sp [term]", "search a podcast by name", (*Session).searchPodcasts},
		{"selp", "selp <num>", "select a podcast", (*Session).selectPodcast},
		{"se", "se [term]", "search an episode in the selected podcast by name", (*Session).searchEpisodes},
		{"sele", "sele <num>", "select an episode and play it", (*Session).selectEpisode},
		{"help", "help, h", "show this message", (*Session).help},
		{"h", "", "", (*Session).help},
		{"q", "q", "quit", nil},
	}
}

func (s *Session) dispatch(ctx context.Context, name, arg string) {
	cmd, ok := lo.Find(commands, func(c command) bool { return c.name == name })
	if !ok || cmd.run == nil {
		log.Fields(logrus.Fields{"command": name}).Debug("unknown command")
		s.printf("Sorry, try again! Did you mean %s?\n", style.Fg(color.Yellow)(closestCommand(name)))
		return
	}

	log.Fields(logrus.Fields{"command": name, "arg": arg}).Debug("dispatching command")
	cmd.run(s, ctx, arg)
}

func closestCommand(name string) string {
	return lo.MinBy(lo.Map(commands, func(c command, _ int) string { return c.name }), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

func (s *Session) searchPodcasts(_ context.Context, term string) {
	s.selectedPodcasts = search.Podcasts(s.catalog.Podcasts, term)

	if len(s.selectedPodcasts) == 0 {
		titles := lo.Map(s.catalog.Podcasts, func(p *feed.Podcast, _ int) string { return p.Title })
		s.printf("%s No podcasts found for %q", icon.Get(icon.Warn), term)
		if suggestion, ok := search.Suggest(term, titles).Get(); ok {
			s.printf(", did you mean %s?", style.Fg(color.Yellow)(suggestion))
		}
		s.printf("\n")
		return
	}

	s.page("Podcasts", lo.Map(s.selectedPodcasts, func(p *feed.Podcast, _ int) string { return p.Title }))
}

func (s *Session) selectPodcast(_ context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		s.printf("%s Could not set podcast number\n", icon.Get(icon.Fail))
		return
	}

	if n < 1 || n > len(s.selectedPodcasts) {
		s.printf("%s Podcast number must be between 1 and %d\n", icon.Get(icon.Fail), len(s.selectedPodcasts))
		return
	}

	s.selectedPodcast = mo.Some(n)
	log.Infof("selected podcast %q", s.selectedPodcasts[n-1].Title)
}

func (s *Session) searchEpisodes(_ context.Context, term string) {
	if s.selectedPodcast.IsAbsent() {
		s.selectedEpisodes = search.EpisodesAcross(s.selectedPodcasts, term)
	} else if podcast, ok := s.SelectedPodcast().Get(); ok {
		s.selectedEpisodes = search.Episodes(podcast.Episodes, term)
	} else {
		return
	}

	s.page("Episodes", lo.Map(s.selectedEpisodes, func(e *feed.Episode, _ int) string { return e.Title }))
}

func (s *Session) selectEpisode(ctx context.Context, arg string) {
	if len(s.selectedEpisodes) == 0 {
		s.printf("Select an episode first\n")
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		if !s.options.DefaultToFirst {
			s.printf("%s Unable to determine episode number\n", icon.Get(icon.Fail))
			return
		}

		s.printf("Unable to determine episode number, selecting latest one\n")
		n = 1
	}

	if n < 1 || n > len(s.selectedEpisodes) {
		return
	}

	s.play(ctx, s.selectedEpisodes[n-1])
}

func (s *Session) play(ctx context.Context, episode *feed.Episode) {
	s.printf("%s Playing...%s\n", icon.Get(icon.Play), episode.Title)

	path, err := s.acquirer.Acquire(ctx, episode)
	if err != nil {
		log.Error(err)
		s.printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(err.Error()))
		return
	}

	if err := s.launcher.Play(path); err != nil {
		log.Error(err)
		s.printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(err.Error()))
	}
}

func (s *Session) help(context.Context, string) {
	s.printHelp()
}

func (s *Session) printHelp() {
	var b strings.Builder
	b.WriteString(style.Bold("Commands") + "\n")
	for _, c := range commands {
		if c.usage == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-12s %s\n", c.usage, style.Faint(c.description)))
	}
	s.printf("%s\n", b.String())
}

func (s *Session) page(title string, items []string) {
	if err := s.pager.Page(title, items); err != nil {
		log.Error(err)
		s.printf("%s %s\n", icon.Get(icon.Fail), err)
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
