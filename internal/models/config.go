package models

import (
	"os"

	"gopkg.in/yaml.v2"
)

type HostingConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	BaseURL   string `yaml:"base_url"`
}

type ThumbsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dir         string `yaml:"dir"`
	MaxWidth    int    `yaml:"max_width"`
	MaxHeight   int    `yaml:"max_height"`
	ThumbWidth  int    `yaml:"thumb_width"`
	ThumbHeight int    `yaml:"thumb_height"`
	Quality     int    `yaml:"quality"`
}

type PublishConfig struct {
	Remote  string `yaml:"remote"`
	Branch  string `yaml:"branch"`
	Message string `yaml:"message"`
}

type Config struct {
	SourceDir       string        `yaml:"source_dir"`
	SiteDir         string        `yaml:"site_dir"`
	OutputFile      string        `yaml:"output_file"`
	Extensions      []string      `yaml:"extensions"`
	Categories      []string      `yaml:"categories"`
	DefaultCategory string        `yaml:"default_category"`
	UploadWorkers   int           `yaml:"upload_workers"`
	ServerAddr      string        `yaml:"server_addr"`
	Hosting         HostingConfig `yaml:"hosting"`
	Thumbs          ThumbsConfig  `yaml:"thumbs"`
	Publish         PublishConfig `yaml:"publish"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = "portfolio"
	}
	if c.SiteDir == "" {
		c.SiteDir = "."
	}
	if c.OutputFile == "" {
		c.OutputFile = "photos.json"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	}
	if len(c.Categories) == 0 {
		c.Categories = []string{"faces", "street", "nature"}
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = "street"
	}
	if c.UploadWorkers <= 0 {
		c.UploadWorkers = 4
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.Thumbs.Dir == "" {
		c.Thumbs.Dir = "photos"
	}
	if c.Thumbs.MaxWidth <= 0 {
		c.Thumbs.MaxWidth = 2000
	}
	if c.Thumbs.MaxHeight <= 0 {
		c.Thumbs.MaxHeight = 2000
	}
	if c.Thumbs.ThumbWidth <= 0 {
		c.Thumbs.ThumbWidth = 400
	}
	if c.Thumbs.ThumbHeight <= 0 {
		c.Thumbs.ThumbHeight = 533
	}
	if c.Thumbs.Quality <= 0 {
		c.Thumbs.Quality = 85
	}
	if c.Publish.Remote == "" {
		c.Publish.Remote = "origin"
	}
	if c.Publish.Branch == "" {
		c.Publish.Branch = "main"
	}
	if c.Publish.Message == "" {
		c.Publish.Message = "Update photos.json"
	}
}
