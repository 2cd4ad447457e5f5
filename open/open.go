// Package open hands files to the operating system's default application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/log"
)

// Launcher opens files with the default handler of the host OS.
// The handler is chosen once, when the Launcher is created.
type Launcher struct {
	name    string
	command func(path string) *exec.Cmd
}

// NewLauncher selects the opener for runtime.GOOS.
func NewLauncher() (*Launcher, error) {
	return launcherFor(runtime.GOOS)
}

func launcherFor(goos string) (*Launcher, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return &Launcher{name: rundll, command: func(path string) *exec.Cmd {
			return exec.Command(rundll, "url.dll,FileProtocolHandler", path)
		}}, nil
	case constant.Darwin:
		return commandLauncher("open"), nil
	case constant.Linux:
		return commandLauncher("xdg-open"), nil
	case constant.Android:
		return commandLauncher("termux-open"), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

func commandLauncher(name string) *Launcher {
	return &Launcher{name: name, command: func(path string) *exec.Cmd {
		return exec.Command(name, path)
	}}
}

// Name returns the opener executable.
func (l *Launcher) Name() string {
	return l.name
}

// Available reports whether the opener executable can be found.
func (l *Launcher) Available() bool {
	_, err := exec.LookPath(l.name)
	return err == nil
}

// Play starts the opener on path and returns without waiting for it.
func (l *Launcher) Play(path string) error {
	cmd := l.command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", l.name, err)
	}

	log.Infof("opened %s with %s (pid %d)", path, l.name, cmd.Process.Pid)

	// reap the child so it does not linger as a zombie
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
