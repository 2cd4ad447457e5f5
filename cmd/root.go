// Package cmd implements the command-line interface for podspy.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/download"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/key"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/open"
	"github.com/podspy-cli/podspy/pager"
	"github.com/podspy-cli/podspy/session"
	"github.com/podspy-cli/podspy/style"
	"github.com/podspy-cli/podspy/version"
	"github.com/podspy-cli/podspy/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("feed", "f", []string{}, "Feed URL to aggregate, repeatable. Replaces the configured list")
	lo.Must0(viper.BindPFlag(key.FeedsURLs, rootCmd.PersistentFlags().Lookup("feed")))

	rootCmd.Flags().StringP("downloads", "d", "", "Directory episodes are downloaded to")
	lo.Must0(viper.BindPFlag(key.DownloadsPath, rootCmd.Flags().Lookup("downloads")))

	rootCmd.Flags().StringP("pager", "p", "", "How result lists are shown (builtin, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("pager", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"builtin", "plain"}, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.SessionPager, rootCmd.Flags().Lookup("pager")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd builds the catalog and starts the interactive session.
var rootCmd = &cobra.Command{
	Use:   constant.Podspy,
	Short: "Search, download and play episodes from your podcast feeds",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Search, download and play episodes from your podcast feeds"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		launcher, err := open.NewLauncher()
		handleErr(err)
		checkLauncher(launcher)

		urls := viper.GetStringSlice(key.FeedsURLs)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		catalog, issues := buildCatalog(ctx, urls)
		stop()

		issues.report(os.Stderr)
		if len(urls) > 0 && len(catalog.Podcasts) == 0 {
			handleErr(errors.New("none of the feeds could be loaded"))
		}

		acquirer := download.NewAcquirer(where.Downloads())
		acquirer.OnProgress = downloadProgress(os.Stdout)

		s := session.New(
			catalog,
			acquirer,
			launcher,
			pager.New(viper.GetString(key.SessionPager), os.Stdout),
			session.Options{
				DefaultToFirst: viper.GetBool(key.SessionDefaultToFirst),
				ShowHelp:       viper.GetBool(key.SessionShowHelp),
			},
		)
		handleErr(s.Run(cmd.Context(), os.Stdin, os.Stdout))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
