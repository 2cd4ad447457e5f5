// Package cmd implements the command-line interface for podspy.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/podspy-cli/podspy/download"
	"github.com/podspy-cli/podspy/filesystem"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/util"
	"github.com/podspy-cli/podspy/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
	remove   func(string) error
	confirm  bool
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache, util.Delete, false},
	{"logs directory", "logs", mo.Some("l"), where.Logs, util.Delete, false},
	{"downloaded episodes", "downloads", mo.Some("d"), where.Downloads, clearDownloads, true},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirmClear asks the user before a removal.
func confirmClear(what, location string) bool {
	confirm := survey.Confirm{
		Message: fmt.Sprintf("Remove %s in %s?", what, location),
		Default: false,
	}
	var response bool
	handleErr(survey.AskOne(&confirm, &response))
	return response
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true
			location := target.location()
			if target.confirm && !doClear("yes") && !confirmClear(target.name, location) {
				continue
			}

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			err := target.remove(location)
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

// clearDownloads removes media files and partial downloads from dir. Other files are kept.
func clearDownloads(dir string) error {
	fs := filesystem.API()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !download.IsMedia(entry.Name()) {
			continue
		}

		if err := fs.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}
