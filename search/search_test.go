package search

import (
	"testing"

	"github.com/podspy-cli/podspy/feed"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func podcast(title string, episodes ...string) *feed.Podcast {
	return &feed.Podcast{
		Title: title,
		Episodes: lo.Map(episodes, func(t string, _ int) *feed.Episode {
			return &feed.Episode{Title: t, MediaURL: "https://cdn.example.com/" + t + ".mp3"}
		}),
	}
}

func titles[T interface{ String() string }](items []T) []string {
	return lo.Map(items, func(i T, _ int) string { return i.String() })
}

func TestPodcasts(t *testing.T) {
	Convey("Given a list of podcasts", t, func() {
		heroes := podcast("Command Line Heroes")
		newbie := podcast("CodeNewbie")
		basecs := podcast("Base.cs Podcast")
		cppcast := podcast("CppCast: C++ Weekly")
		lex := podcast("Lex Fridman Podcast")
		all := []*feed.Podcast{heroes, newbie, basecs, cppcast, lex}

		Convey("An empty term returns the input unchanged", func() {
			result := Podcasts(all, "")
			So(len(result), ShouldEqual, len(all))
			for i := range all {
				So(result[i], ShouldPointTo, all[i])
			}
		})

		Convey("Matching ignores case", func() {
			for _, term := range []string{"codenewbie", "CODENEWBIE", "CodeNewbie", "coDEnew"} {
				result := Podcasts([]*feed.Podcast{newbie}, term)
				So(len(result), ShouldEqual, 1)
				So(result[0], ShouldPointTo, newbie)
			}
		})

		Convey("Matching is a substring test anywhere in the title", func() {
			So(titles(Podcasts(all, "line")), ShouldResemble, []string{"Command Line Heroes"})
			So(titles(Podcasts(all, "Heroes")), ShouldResemble, []string{"Command Line Heroes"})
		})

		Convey("Results keep the input order", func() {
			So(titles(Podcasts(all, "podcast")), ShouldResemble, []string{"Base.cs Podcast", "Lex Fridman Podcast"})
			So(titles(Podcasts(all, "c")), ShouldResemble, []string{
				"Command Line Heroes", "CodeNewbie", "Base.cs Podcast", "CppCast: C++ Weekly", "Lex Fridman Podcast",
			})
		})

		Convey("Pattern characters are matched literally", func() {
			So(titles(Podcasts(all, "C++")), ShouldResemble, []string{"CppCast: C++ Weekly"})
			So(titles(Podcasts(all, "e.c")), ShouldResemble, []string{"Base.cs Podcast"})
			So(Podcasts(all, ".*"), ShouldBeEmpty)
			So(Podcasts(all, "(live"), ShouldBeEmpty)
			So(Podcasts(all, "[a-z]"), ShouldBeEmpty)
			So(Podcasts(all, `\d`), ShouldBeEmpty)
		})

		Convey("A term that matches nothing returns an empty result", func() {
			So(Podcasts(all, "rust"), ShouldBeEmpty)
		})

		Convey("The input is not modified", func() {
			_ = Podcasts(all, "podcast")
			So(titles(all), ShouldResemble, []string{
				"Command Line Heroes", "CodeNewbie", "Base.cs Podcast", "CppCast: C++ Weekly", "Lex Fridman Podcast",
			})
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given the episodes of a podcast", t, func() {
		heroes := podcast("Command Line Heroes", "OS Wars_part 1", "OS Wars_part 2", "Hello World", "Ready to Commit")

		Convey("An empty term returns every episode", func() {
			So(Episodes(heroes.Episodes, ""), ShouldResemble, heroes.Episodes)
		})

		Convey("Matches keep feed order", func() {
			So(titles(Episodes(heroes.Episodes, "wars")), ShouldResemble, []string{"OS Wars_part 1", "OS Wars_part 2"})
		})

		Convey("Literal underscores and spaces are part of the term", func() {
			So(titles(Episodes(heroes.Episodes, "wars_part 2")), ShouldResemble, []string{"OS Wars_part 2"})
		})

		Convey("Titles spanning lines still match", func() {
			multiline := []*feed.Episode{{Title: "Part one\nThe war begins"}}
			So(len(Episodes(multiline, "war")), ShouldEqual, 1)
		})
	})
}

func TestEpisodesAcross(t *testing.T) {
	Convey("Given two podcasts", t, func() {
		a := podcast("A", "Intro", "War1")
		b := podcast("B", "War2", "Outro")

		Convey("Results are concatenated in podcast then episode order", func() {
			So(titles(EpisodesAcross([]*feed.Podcast{a, b}, "War")), ShouldResemble, []string{"War1", "War2"})
			So(titles(EpisodesAcross([]*feed.Podcast{b, a}, "War")), ShouldResemble, []string{"War2", "War1"})
		})

		Convey("An empty term flattens every episode", func() {
			So(titles(EpisodesAcross([]*feed.Podcast{a, b}, "")), ShouldResemble, []string{"Intro", "War1", "War2", "Outro"})
		})

		Convey("Identical titles in different podcasts both appear", func() {
			c := podcast("C", "Intro")
			result := EpisodesAcross([]*feed.Podcast{a, c}, "intro")
			So(len(result), ShouldEqual, 2)
			So(result[0], ShouldPointTo, a.Episodes[0])
			So(result[1], ShouldPointTo, c.Episodes[0])
		})

		Convey("No podcasts yield no episodes", func() {
			So(EpisodesAcross(nil, "War"), ShouldBeEmpty)
		})
	})
}

func TestInvalidUTF8(t *testing.T) {
	Convey("Given a term with invalid UTF-8", t, func() {
		podcasts := []*feed.Podcast{podcast("Caf\xe9 Talk"), podcast("Cafe Racers")}

		Convey("Searching does not panic", func() {
			So(func() { Podcasts(podcasts, "caf\xe9") }, ShouldNotPanic)
			So(func() { Episodes(nil, "\xff\xfe") }, ShouldNotPanic)
		})

		Convey("The title with the same bytes matches", func() {
			So(titles(Podcasts(podcasts, "caf\xe9")), ShouldResemble, []string{"Caf\xe9 Talk"})
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given podcast titles", t, func() {
		candidates := []string{"Command Line Heroes", "CodeNewbie", "CppCast: C++ Weekly"}

		Convey("A loose term suggests the closest title", func() {
			suggestion, ok := Suggest("cmdline", candidates).Get()
			So(ok, ShouldBeTrue)
			So(suggestion, ShouldEqual, "Command Line Heroes")
		})

		Convey("Nothing is suggested for unrelated terms", func() {
			So(Suggest("zzz", candidates).IsPresent(), ShouldBeFalse)
		})

		Convey("Nothing is suggested for an empty term", func() {
			So(Suggest("", candidates).IsPresent(), ShouldBeFalse)
		})
	})
}
