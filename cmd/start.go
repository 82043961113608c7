package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"static-launcher/core/browser"
	"static-launcher/core/config"
	"static-launcher/core/loader"
	"static-launcher/core/logger"
	"static-launcher/core/server"
	"static-launcher/core/storage"
	"static-launcher/feature/static"
	"static-launcher/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the static file server",
	Long:  `Binds the port, opens the browser and serves the configured root until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Interrupt handling
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling once shutdown begins, so a second
	// Ctrl+C terminates the process.
	context.AfterFunc(ctx, stop)

	// 4. Serving Root
	root, err := openRoot(ctx, cfg, storage.NewClient, logg)
	if err != nil {
		return err
	}

	// 5. Initialize Fiber App and Features
	app := server.NewApp(logg)

	mgr := loader.NewManager(logg)
	mgr.Register(static.NewFeature(root, cfg.Server.Browse, logg))
	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	// 6. Run until interrupted
	browser.Quiet()
	l := server.NewLauncher(cfg.Server, app, browser.System(), cmd.OutOrStdout(), logg)
	return l.Run(ctx)
}

// clientFactory creates the storage client for the bucket source.
type clientFactory func(storage.Config) (storage.Client, error)

// openRoot builds the serving root for the configured source.
func openRoot(ctx context.Context, cfg *config.Config, newClient clientFactory, logg *zap.Logger) (http.FileSystem, error) {
	switch cfg.Server.Source {
	case server.SourceEmbedded:
		logg.Info("Serving bundled dual-camera page")
		return web.FS(), nil

	case server.SourceBucket:
		store, err := newClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}

		checkCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout())
		defer cancel()
		exists, err := store.BucketExists(checkCtx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Storage.Bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %q does not exist", cfg.Storage.Bucket)
		}

		logg.Info("Serving bucket",
			zap.String("endpoint", cfg.Storage.Endpoint),
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Storage.Prefix))
		return storage.NewFileSystem(ctx, store, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Timeout()), nil

	default:
		dir, err := server.ResolveRoot(cfg.Server.Root)
		if err != nil {
			return nil, err
		}
		logg.Info("Serving directory", zap.String("root", dir))
		return http.Dir(dir), nil
	}
}
