package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/open"
	"github.com/podspy-cli/podspy/style"
)

// checkLauncher warns when the system opener is missing. Episodes are still downloaded.
func checkLauncher(launcher *open.Launcher) {
	if launcher.Available() {
		return
	}

	printMissingLauncherWarning(launcher.Name())
}

func printMissingLauncherWarning(name string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Linux:
		installCmd = "sudo apt install xdg-utils"
	case constant.Android:
		installCmd = "pkg install termux-tools"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Yellow).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.Yellow).Render(fmt.Sprintf("%s Warning: Missing Player Launcher", icon.Get(icon.Warn)))
	body := style.New().Foreground(color.Text).Render(fmt.Sprintf("'%s' was not found in your PATH. Episodes will be downloaded but not played.", name))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Mauve).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
