package config

const (
	defaultConfigPath     = "~/.config/cookbook/config.toml"
	defaultDataDir        = "~/.local/share/cookbook"
	defaultImageBackend   = ImageBackendDir
	defaultS3Region       = "us-east-1"
	defaultServerBind     = "127.0.0.1:8537"
	defaultMaxUploadBytes = 10 << 20
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Images: Images{
			Backend: defaultImageBackend,
			S3: S3{
				Region: defaultS3Region,
			},
		},
		Server: Server{
			Bind:           defaultServerBind,
			MaxUploadBytes: defaultMaxUploadBytes,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
