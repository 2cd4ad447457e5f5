package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/feed"
	"github.com/podspy-cli/podspy/key"
	"github.com/podspy-cli/podspy/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(feedsCmd)
}

// feedsCmd groups the commands inspecting the configured feeds.
var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "Inspect the configured podcast feeds",
}

func init() {
	feedsCmd.AddCommand(feedsListCmd)
	feedsListCmd.SetOut(os.Stdout)
}

var feedsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured feed URLs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, url := range viper.GetStringSlice(key.FeedsURLs) {
			cmd.Println(url)
		}
	},
}

func init() {
	feedsCmd.AddCommand(feedsDumpCmd)
	feedsDumpCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	feedsDumpCmd.SetOut(os.Stdout)
}

// feedsDumpCmd builds the catalog without starting a session.
var feedsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Fetch every feed and print the resulting catalog",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, issues := buildCatalog(cmd.Context(), viper.GetStringSlice(key.FeedsURLs))
		issues.report(os.Stderr)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(catalog))
			return
		}

		podcastStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, podcast := range catalog.Podcasts {
			cmd.Println(podcastStyle(podcast.Title), style.Faint(podcast.URL))
			for _, episode := range podcast.Episodes {
				cmd.Printf("  %s %s\n", episode.Title, style.Fg(color.Blue)(episode.MediaURL))
			}

			if i < len(catalog.Podcasts)-1 {
				cmd.Println()
			}
		}
	},
}

func init() {
	feedsCmd.AddCommand(feedsSchemaCmd)
}

// feedsSchemaCmd prints the JSON schema of feeds dump --json.
var feedsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the catalog dump",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "catalog", "podcast", "episode":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&feed.Catalog{})))
	},
}
