package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port to listen on. It is passed to bind unchecked; 0 picks a free port.
	Port int `mapstructure:"port" default:"8001"`
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Root is the local directory to serve. Empty means the executable's directory.
	Root string `mapstructure:"root" default:""`
	// Source selects where files are served from (local, bucket, embedded).
	Source string `mapstructure:"source" default:"local"`
	// Browse enables directory listings for directories without an index file.
	Browse bool `mapstructure:"browse" default:"true"`
	// NoBrowser disables opening the default browser on startup.
	NoBrowser bool `mapstructure:"no_browser" default:"false"`
	// ShutdownTimeout caps how long open connections may hold up shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"3s"`
}

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
	// SourceEmbedded serves the dual-camera page bundled into the binary.
	SourceEmbedded = "embedded"
)

// DefaultShutdownTimeout is used when ShutdownTimeout is not positive.
const DefaultShutdownTimeout = 3 * time.Second

// IsValidSource checks if the configured source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceBucket, SourceEmbedded:
		return true
	default:
		return false
	}
}

// Addr returns the listen address for the configured host and port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) shutdownTimeout() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return DefaultShutdownTimeout
	}
	return c.ShutdownTimeout
}
