package open

import (
	"os/exec"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLauncherFor(t *testing.T) {
	Convey("The opener is chosen by operating system", t, func() {
		for goos, name := range map[string]string{
			"darwin":  "open",
			"linux":   "xdg-open",
			"android": "termux-open",
		} {
			l, err := launcherFor(goos)
			So(err, ShouldBeNil)
			So(l.Name(), ShouldEqual, name)
			So(l.command("/tmp/ep.mp3").Args, ShouldResemble, []string{name, "/tmp/ep.mp3"})
		}

		Convey("Windows goes through the file protocol handler", func() {
			l, err := launcherFor("windows")
			So(err, ShouldBeNil)
			So(l.command(`C:\ep.mp3`).Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", `C:\ep.mp3`})
		})

		Convey("Other systems are unsupported", func() {
			_, err := launcherFor("plan9")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPlay(t *testing.T) {
	Convey("Given a launcher running a harmless command", t, func() {
		if runtime.GOOS == "windows" {
			SkipSo("no true(1) on windows")
			return
		}
		truePath, err := exec.LookPath("true")
		if err != nil {
			SkipSo("true(1) not available")
			return
		}

		l := commandLauncher(truePath)

		Convey("Play returns without error", func() {
			So(l.Play("/tmp/ep.mp3"), ShouldBeNil)
			So(l.Available(), ShouldBeTrue)
		})

		Convey("A missing opener is reported", func() {
			missing := commandLauncher("podspy-no-such-opener")
			So(missing.Available(), ShouldBeFalse)
			So(missing.Play("/tmp/ep.mp3"), ShouldNotBeNil)
		})
	})
}
