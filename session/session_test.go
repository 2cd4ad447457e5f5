package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/podspy-cli/podspy/feed"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeAcquirer struct {
	calls []*feed.Episode
	err   error
}

func (a *fakeAcquirer) Acquire(_ context.Context, episode *feed.Episode) (string, error) {
	a.calls = append(a.calls, episode)
	if a.err != nil {
		return "", a.err
	}
	return "/downloads/" + episode.Title + ".mp3", nil
}

type fakeLauncher struct {
	paths []string
}

func (l *fakeLauncher) Play(path string) error {
	l.paths = append(l.paths, path)
	return nil
}

type fakePager struct {
	pages [][]string
}

func (p *fakePager) Page(_ string, items []string) error {
	p.pages = append(p.pages, items)
	return nil
}

func (p *fakePager) last() []string {
	if len(p.pages) == 0 {
		return nil
	}
	return p.pages[len(p.pages)-1]
}

func podcast(title string, episodes ...string) *feed.Podcast {
	return &feed.Podcast{
		Title: title,
		URL:   "https://example.com/" + strings.ReplaceAll(title, " ", ""),
		Episodes: lo.Map(episodes, func(e string, _ int) *feed.Episode {
			return &feed.Episode{Title: e, MediaURL: "https://media.example.com/" + e + ".mp3"}
		}),
	}
}

func episodeTitles(episodes []*feed.Episode) []string {
	return lo.Map(episodes, func(e *feed.Episode, _ int) string { return e.Title })
}

type harness struct {
	session  *Session
	acquirer *fakeAcquirer
	launcher *fakeLauncher
	pager    *fakePager
	out      *bytes.Buffer
}

func newHarness(options Options, podcasts ...*feed.Podcast) *harness {
	h := &harness{
		acquirer: &fakeAcquirer{},
		launcher: &fakeLauncher{},
		pager:    &fakePager{},
		out:      &bytes.Buffer{},
	}
	h.session = New(&feed.Catalog{Podcasts: podcasts}, h.acquirer, h.launcher, h.pager, options)
	return h
}

func (h *harness) run(lines ...string) error {
	return h.session.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), h.out)
}

func TestParse(t *testing.T) {
	Convey("Given command lines", t, func() {
		Convey("The argument is the remaining tokens joined by single spaces", func() {
			name, arg, ok := parse("  sp   command   line  ")
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "sp")
			So(arg, ShouldEqual, "command line")
		})

		Convey("A bare command has an empty argument", func() {
			name, arg, ok := parse("se")
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "se")
			So(arg, ShouldBeEmpty)
		})

		Convey("Blank lines are not commands", func() {
			_, _, ok := parse("   ")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestInitialState(t *testing.T) {
	Convey("Given a new session", t, func() {
		h := newHarness(Options{}, podcast("A", "Intro", "War1"), podcast("B", "War2", "Outro"))

		Convey("Every podcast is selected", func() {
			So(h.session.SelectedPodcasts(), ShouldHaveLength, 2)
		})

		Convey("Every episode across podcasts is selected", func() {
			So(episodeTitles(h.session.SelectedEpisodes()), ShouldResemble, []string{"Intro", "War1", "War2", "Outro"})
		})

		Convey("No podcast is selected", func() {
			So(h.session.SelectedPodcast().IsAbsent(), ShouldBeTrue)
			So(h.session.prompt(), ShouldContainSubstring, "No podcast selected")
		})
	})
}

func TestEndToEnd(t *testing.T) {
	Convey("Given a catalog of two podcasts with one episode each", t, func() {
		h := newHarness(Options{DefaultToFirst: true},
			podcast("Command Line Heroes", "Hello World"),
			podcast("CodeNewbie", "Getting Started"),
		)

		Convey("When searching, listing and playing", func() {
			So(h.run("sp command"), ShouldBeNil)
			So(h.session.SelectedPodcasts(), ShouldHaveLength, 1)
			So(h.session.SelectedPodcasts()[0].Title, ShouldEqual, "Command Line Heroes")
			So(h.pager.last(), ShouldResemble, []string{"Command Line Heroes"})

			So(h.run("se"), ShouldBeNil)
			So(h.session.SelectedEpisodes(), ShouldResemble, h.session.SelectedPodcasts()[0].Episodes)

			So(h.run("sele 1"), ShouldBeNil)

			Convey("Then the episode is acquired and played exactly once", func() {
				So(h.acquirer.calls, ShouldHaveLength, 1)
				So(h.acquirer.calls[0].MediaURL, ShouldEqual, "https://media.example.com/Hello World.mp3")
				So(h.launcher.paths, ShouldResemble, []string{"/downloads/Hello World.mp3"})
				So(h.out.String(), ShouldContainSubstring, "Playing...Hello World")
			})
		})

		Convey("When selecting a podcast", func() {
			So(h.run("selp 2"), ShouldBeNil)

			Convey("Then the prompt shows its title", func() {
				So(h.session.prompt(), ShouldContainSubstring, "CodeNewbie")
			})

			Convey("Then se searches only within it", func() {
				So(h.run("se"), ShouldBeNil)
				So(episodeTitles(h.session.SelectedEpisodes()), ShouldResemble, []string{"Getting Started"})
			})
		})
	})
}

func TestSelectionBounds(t *testing.T) {
	Convey("Given a session with a selected podcast", t, func() {
		h := newHarness(Options{}, podcast("A", "One", "Two"), podcast("B", "Three"))
		So(h.run("selp 1"), ShouldBeNil)

		Convey("selp out of range leaves the selection unchanged", func() {
			So(h.run("selp 5", "selp 0", "selp -1"), ShouldBeNil)
			So(h.session.SelectedPodcast().MustGet().Title, ShouldEqual, "A")
			So(h.out.String(), ShouldContainSubstring, "between 1 and 2")
		})

		Convey("selp with a non-integer leaves the selection unchanged", func() {
			So(h.run("selp two"), ShouldBeNil)
			So(h.session.SelectedPodcast().MustGet().Title, ShouldEqual, "A")
			So(h.out.String(), ShouldContainSubstring, "Could not set podcast number")
		})

		Convey("sele out of range is a no-op", func() {
			So(h.run("sele 99", "sele 0"), ShouldBeNil)
			So(h.acquirer.calls, ShouldBeEmpty)
			So(h.launcher.paths, ShouldBeEmpty)
		})

		Convey("se keeps the episodes when the index falls outside a new podcast search", func() {
			So(h.run("se one"), ShouldBeNil)
			So(episodeTitles(h.session.SelectedEpisodes()), ShouldResemble, []string{"One"})

			So(h.run("sp nothing-matches", "se"), ShouldBeNil)
			So(h.session.SelectedPodcast().IsAbsent(), ShouldBeTrue)
			So(episodeTitles(h.session.SelectedEpisodes()), ShouldResemble, []string{"One"})

			Convey("and does not list them again", func() {
				So(h.pager.pages, ShouldHaveLength, 1)
			})
		})

		Convey("The prompt tells when the selected index falls outside a new podcast search", func() {
			So(h.run("selp 2", "sp a"), ShouldBeNil)
			So(h.session.SelectedPodcasts(), ShouldHaveLength, 1)
			So(h.session.prompt(), ShouldContainSubstring, "Podcast 2 not in results")
			So(h.session.prompt(), ShouldNotContainSubstring, "No podcast selected")

			So(h.run("selp 1"), ShouldBeNil)
			So(h.session.prompt(), ShouldContainSubstring, "[A]")
		})
	})
}

func TestInvalidInput(t *testing.T) {
	Convey("Given a session", t, func() {
		h := newHarness(Options{}, podcast("Caf\xe9 Talk", "Espresso"), podcast("B", "One"))

		Convey("Search terms with invalid UTF-8 do not end the session", func() {
			So(func() { _ = h.run("sp caf\xe9", "se \xff", "q") }, ShouldNotPanic)
			So(h.session.SelectedPodcasts(), ShouldHaveLength, 1)
			So(h.session.SelectedEpisodes(), ShouldBeEmpty)
		})
	})
}

func TestSelectEpisode(t *testing.T) {
	Convey("Given a session", t, func() {
		Convey("With no episodes selected", func() {
			h := newHarness(Options{DefaultToFirst: true}, podcast("A", "One"))
			So(h.run("se zzz", "sele 1"), ShouldBeNil)

			Convey("Then the user is asked to select an episode first", func() {
				So(h.session.SelectedEpisodes(), ShouldBeEmpty)
				So(h.out.String(), ShouldContainSubstring, "Select an episode first")
				So(h.acquirer.calls, ShouldBeEmpty)
			})
		})

		Convey("With DefaultToFirst enabled and an unparsable index", func() {
			h := newHarness(Options{DefaultToFirst: true}, podcast("A", "One", "Two"))
			So(h.run("sele latest"), ShouldBeNil)

			Convey("Then the first episode plays", func() {
				So(h.out.String(), ShouldContainSubstring, "selecting latest one")
				So(episodeTitles(h.acquirer.calls), ShouldResemble, []string{"One"})
			})
		})

		Convey("With DefaultToFirst disabled and an unparsable index", func() {
			h := newHarness(Options{}, podcast("A", "One", "Two"))
			So(h.run("sele latest"), ShouldBeNil)

			Convey("Then nothing plays", func() {
				So(h.out.String(), ShouldContainSubstring, "Unable to determine episode number")
				So(h.acquirer.calls, ShouldBeEmpty)
			})
		})

		Convey("When the acquirer fails", func() {
			h := newHarness(Options{}, podcast("A", "One"))
			h.acquirer.err = errors.New("connection refused")
			So(h.run("sele 1"), ShouldBeNil)

			Convey("Then the error is reported and nothing is launched", func() {
				So(h.out.String(), ShouldContainSubstring, "connection refused")
				So(h.launcher.paths, ShouldBeEmpty)
			})
		})
	})
}

func TestCommands(t *testing.T) {
	Convey("Given a session", t, func() {
		h := newHarness(Options{ShowHelp: true}, podcast("CppCast", "C++ Weekly"), podcast("CodeNewbie", "Intro"))

		Convey("The command table is printed on start", func() {
			So(h.run("q"), ShouldBeNil)
			So(h.out.String(), ShouldContainSubstring, "sele <num>")
		})

		Convey("q stops reading further commands", func() {
			So(h.run("q", "sp cpp"), ShouldBeNil)
			So(h.pager.pages, ShouldBeEmpty)
		})

		Convey("An empty sp lists every podcast", func() {
			So(h.run("sp"), ShouldBeNil)
			So(h.pager.last(), ShouldResemble, []string{"CppCast", "CodeNewbie"})
		})

		Convey("A podcast search without results suggests a title", func() {
			So(h.run("sp cppcats"), ShouldBeNil)
			So(h.session.SelectedPodcasts(), ShouldBeEmpty)
			So(h.out.String(), ShouldContainSubstring, "No podcasts found")
		})

		Convey("Unknown commands suggest the closest one", func() {
			So(h.run("sel 1"), ShouldBeNil)
			So(h.out.String(), ShouldContainSubstring, "Sorry, try again!")
			So(closestCommand("sle"), ShouldEqual, "se")
			So(closestCommand("selpp"), ShouldEqual, "selp")
		})

		Convey("Blank lines are ignored", func() {
			So(h.run("", "   "), ShouldBeNil)
			So(h.out.String(), ShouldNotContainSubstring, "Sorry")
		})

		Convey("A cancelled context stops the loop", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := h.session.Run(ctx, strings.NewReader("sp\n"), h.out)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
