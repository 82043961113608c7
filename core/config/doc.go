// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from command-line flags,
// environment variables and an optional .env file (via godotenv). Defaults
// come from the `default` struct tags of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: bind host/port, serving root and source, browsing, browser launch
//   - Storage: S3/MinIO credentials, bucket and prefix for the bucket source
//   - Log: Logging level and format
//
// # Precedence
//
// A flag that was set explicitly wins, then the environment (SERVER_PORT,
// LOG_LEVEL, ...), then .env, then the struct-tag default.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
