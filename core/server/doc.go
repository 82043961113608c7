// Package server runs the static file server.
//
// # Configuration
//
// The Config struct defines the bind host and port (default 8001), the serving
// root and its source (local directory, bucket or the embedded page), directory
// browsing, whether a browser is opened on startup, and how long shutdown may
// wait for open connections.
//
// # Serving Root
//
// ResolveRoot turns the configured directory into an absolute path. An empty
// value resolves to the directory containing the running executable. The root
// is handed to the static feature as an http.FileSystem; the process working
// directory is never changed.
//
// # Launcher
//
// Launcher.Run binds the listener, prints the URL and the Ctrl+C hint to its
// output, and serves the Fiber app built by NewApp until its context is
// cancelled. The URL is opened through a browser.Opener in the background;
// serving never waits for it. A bind failure (e.g. port in use) is returned
// immediately; there is no fallback port.
//
//	app := server.NewApp(logg)
//	l := server.NewLauncher(cfg.Server, app, browser.System(), os.Stdout, logg)
//	err := l.Run(ctx)
package server
