package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata injected via ldflags, e.g.
//
//	go build -ldflags "-X main.version=v1.2.0 -X main.commit=$(git rev-parse --short HEAD)"
//
// Binaries built without ldflags fall back to module build info.
var (
	version = ""
	commit  = ""
	date    = ""
)

// versionInfo describes the build that produced this binary.
type versionInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// resolveVersionInfo merges ldflags values with module build info.
// ldflags win; build info fills the gaps; anything else reads "unknown".
func resolveVersionInfo() versionInfo {
	vi := versionInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if ok {
		if vi.Version == "" {
			vi.Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if vi.Commit == "" {
					vi.Commit = shortHash(setting.Value)
				}
			case "vcs.time":
				if vi.Date == "" {
					vi.Date = setting.Value
				}
			}
		}
	}

	if vi.Version == "" {
		vi.Version = "(devel)"
	}
	if vi.Commit == "" {
		vi.Commit = "unknown"
	}
	if vi.Date == "" {
		vi.Date = "unknown"
	}
	return vi
}

// shortHash truncates a VCS revision to the conventional seven characters.
func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns the version string shown by the root command's
// --version flag.
func getVersion() string {
	return resolveVersionInfo().Version
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version of presencescore together with the commit,
build date, and Go toolchain it was built with.

Use --short when embedding the version in scripts or report filenames.`,
		Run: func(cmd *cobra.Command, _ []string) {
			vi := resolveVersionInfo()

			short, err := cmd.Flags().GetBool("short")
			if err == nil && short {
				fmt.Fprintln(cmd.OutOrStdout(), vi.Version)
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "presencescore %s (commit %s, built %s, %s)\n",
				vi.Version, vi.Commit, vi.Date, vi.GoVersion)
		},
	}

	cmd.Flags().Bool("short", false, "Print only the bare version string")

	return cmd
}
