package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints build details. It skips sharedSetup so it works without sources.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the faithboard build details.",
	Long: `Print the release, commit and build time of this binary, along with
the Go runtime and platform it was built for. Include this output when
reporting a problem with a dashboard or history backend.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("faithboard %s\n", version)
		cmd.Printf("  Commit:   %s\n", commit)
		cmd.Printf("  Built:    %s\n", date)
		cmd.Printf("  Runtime:  %s\n", runtime.Version())
		cmd.Printf("  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
