package cmd

import (
	"fmt"
	"os"

	"static-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Run without a subcommand it starts the server.
var RootCmd = &cobra.Command{
	Use:   "static-launcher",
	Short: "Serve a directory over HTTP and open it in the browser",
	Long: `static-launcher serves the files next to its executable (or any directory,
or an S3/MinIO bucket) over HTTP on port 8001 and opens the default browser
at http://localhost:<port>. Press Ctrl+C to stop it.

With --source embedded it serves the bundled dual-camera page instead. Use
that or --root under "go run", where the executable lives in a temp dir.`,
	Args:          cobra.NoArgs,
	RunE:          runStart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the structured logger in console format, matching
		// what the user saw while the server was running.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.Int("port", 8001, "TCP port to listen on")
	flags.String("host", "", "interface to bind (default all interfaces)")
	flags.String("root", "", "directory to serve (default the executable's directory)")
	flags.String("source", "local", "where to serve files from: local, bucket or embedded")
	flags.Bool("no-browser", false, "do not open the default browser")
	flags.Bool("browse", true, "list directories that have no index.html")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
}
