package version

import (
	"context"
	"fmt"
	"time"

	"github.com/podspy-cli/podspy/color"
	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/icon"
	"github.com/podspy-cli/podspy/key"
	"github.com/podspy-cli/podspy/log"
	"github.com/podspy-cli/podspy/style"
	"github.com/podspy-cli/podspy/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. It does nothing unless cli.version_check is on.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/podspy-cli/podspy/releases/tag/v"+latest),
	)
}
