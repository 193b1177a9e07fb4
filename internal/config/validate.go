package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateImages(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateImages() error {
	switch c.Images.Backend {
	case ImageBackendDir:
		if c.Paths.ImagesDir == "" {
			return errors.New("paths.images_dir must be set when images.backend is \"dir\"")
		}
	case ImageBackendS3:
		if c.Images.S3.Bucket == "" {
			return errors.New("images.s3.bucket must be set when images.backend is \"s3\"")
		}
		if (c.Images.S3.AccessKeyID == "") != (c.Images.S3.SecretAccessKey == "") {
			return errors.New("images.s3.access_key_id and images.s3.secret_access_key must be set together")
		}
	default:
		return fmt.Errorf("images.backend: unsupported value %q (want %q or %q)", c.Images.Backend, ImageBackendDir, ImageBackendS3)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
