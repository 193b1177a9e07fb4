package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeImages()
	c.normalizeServer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("COOKBOOK_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = value
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		c.Paths.ImagesDir = filepath.Join(c.Paths.DataDir, ImagesDirName)
	}
	if c.Paths.ImagesDir, err = expandPath(strings.TrimSpace(c.Paths.ImagesDir)); err != nil {
		return fmt.Errorf("paths.images_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeImages() {
	c.Images.Backend = strings.ToLower(strings.TrimSpace(c.Images.Backend))
	if c.Images.Backend == "" {
		c.Images.Backend = defaultImageBackend
	}
	s3 := &c.Images.S3
	s3.Bucket = strings.TrimSpace(s3.Bucket)
	s3.Region = strings.TrimSpace(s3.Region)
	if s3.Region == "" {
		s3.Region = defaultS3Region
	}
	s3.Endpoint = strings.TrimRight(strings.TrimSpace(s3.Endpoint), "/")
	s3.Prefix = strings.TrimLeft(strings.TrimSpace(s3.Prefix), "/")
	if s3.Prefix != "" && !strings.HasSuffix(s3.Prefix, "/") {
		s3.Prefix += "/"
	}
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	if c.Server.Token == "" {
		if value, ok := os.LookupEnv("COOKBOOK_API_TOKEN"); ok {
			c.Server.Token = strings.TrimSpace(value)
		}
	}
	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = defaultMaxUploadBytes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
