package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"static-launcher/core/browser"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Launcher binds the listener, announces the URL, opens the browser and
// serves the app until its context is cancelled.
type Launcher struct {
	cfg    Config
	app    *fiber.App
	opener browser.Opener
	out    io.Writer
	logger *zap.Logger
}

// NewLauncher creates a new Launcher. out receives the announcement and
// shutdown lines (stdout in production).
func NewLauncher(cfg Config, app *fiber.App, opener browser.Opener, out io.Writer, logger *zap.Logger) *Launcher {
	if opener == nil || cfg.NoBrowser {
		opener = browser.Nop()
	}
	return &Launcher{
		cfg:    cfg,
		app:    app,
		opener: opener,
		out:    out,
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then prints "Server stopped." and returns nil.
// A bind failure is returned before anything is printed or opened.
func (l *Launcher) Run(ctx context.Context) error {
	addr := l.cfg.Addr()
	bound, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	ln := &onceCloseListener{Listener: bound}
	defer ln.Close()

	url := localURL(ln.Addr())
	l.logger.Info("Listening", zap.String("addr", ln.Addr().String()), zap.String("url", url))

	highlight := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(l.out, "Server running at %s\n", highlight(url))
	fmt.Fprintln(l.out, "Press Ctrl+C to stop the server")

	g, gctx := errgroup.WithContext(ctx)
	served := make(chan struct{})

	g.Go(func() error {
		defer close(served)
		return l.app.Listener(ln)
	})

	// The opener may block until the browser exits, so it runs outside the
	// group: the listener is already bound and Run never waits for it.
	go func() {
		if err := l.opener.Open(url); err != nil {
			l.logger.Warn("Failed to open browser", zap.String("url", url), zap.Error(err))
		}
	}()

	g.Go(func() error {
		select {
		case <-served:
			return nil
		case <-gctx.Done():
		}
		l.logger.Info("Shutting down server...")
		// Close first so a Serve that has not registered the listener yet
		// still returns. In-flight requests get at most ShutdownTimeout.
		_ = ln.Close()
		return l.app.ShutdownWithTimeout(l.cfg.shutdownTimeout())
	})

	err = g.Wait()
	if ctx.Err() != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			l.logger.Warn("Shutdown timed out, dropping open connections",
				zap.Duration("timeout", l.cfg.shutdownTimeout()))
		case err != nil && !errors.Is(err, net.ErrClosed):
			l.logger.Debug("Server exited during shutdown", zap.Error(err))
		}
		fmt.Fprintln(l.out, "\nServer stopped.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// localURL returns the http://localhost URL for the bound address.
func localURL(addr net.Addr) string {
	port := 0
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// onceCloseListener makes Close idempotent; both the launcher and Fiber close it.
type onceCloseListener struct {
	net.Listener
	once sync.Once
	err  error
}

func (l *onceCloseListener) Close() error {
	l.once.Do(func() { l.err = l.Listener.Close() })
	return l.err
}
