package pager

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNumber(t *testing.T) {
	Convey("Given a list of titles", t, func() {
		items := []string{"War", "Peace"}

		Convey("Then every line is numbered from 1", func() {
			So(Number(items), ShouldResemble, []string{" 1.\tWar", " 2.\tPeace"})
		})
	})

	Convey("Given no titles", t, func() {
		So(Number(nil), ShouldBeEmpty)
	})
}

func TestPlain(t *testing.T) {
	Convey("Given a plain pager", t, func() {
		var out bytes.Buffer
		p := &Plain{Out: &out}

		Convey("When paging titles", func() {
			So(p.Page("Podcasts", []string{"A", "B"}), ShouldBeNil)

			Convey("Then the numbered lines are written", func() {
				So(out.String(), ShouldEqual, " 1.\tA\n 2.\tB\n")
			})
		})

		Convey("When paging nothing", func() {
			So(p.Page("Podcasts", nil), ShouldBeNil)

			Convey("Then nothing is written", func() {
				So(out.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given a buffer", t, func() {
		var out bytes.Buffer

		Convey("The plain kind returns a plain pager", func() {
			_, ok := New("plain", &out).(*Plain)
			So(ok, ShouldBeTrue)
		})

		Convey("Other kinds return the viewport pager", func() {
			_, ok := New("builtin", &out).(*Viewport)
			So(ok, ShouldBeTrue)
		})

		Convey("The viewport pager prints plainly when not writing to a terminal", func() {
			So(New("builtin", &out).Page("Episodes", []string{"One"}), ShouldBeNil)
			So(out.String(), ShouldEqual, " 1.\tOne\n")
		})
	})
}

func TestModel(t *testing.T) {
	Convey("Given a viewport model", t, func() {
		m := newModel("Episodes", Number([]string{"A very long episode title"}), 10, 10)

		Convey("Lines are truncated to the width", func() {
			So(m.viewport.View(), ShouldContainSubstring, "…")
			So(m.viewport.Height, ShouldEqual, 7)
		})

		Convey("Resizing updates the viewport", func() {
			m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			So(m.viewport.Width, ShouldEqual, 100)
			So(m.viewport.Height, ShouldEqual, 27)
			So(m.viewport.View(), ShouldContainSubstring, "A very long episode title")
		})

		Convey("q quits", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})

		Convey("The view carries the title", func() {
			So(m.View(), ShouldContainSubstring, "Episodes")
		})
	})
}
