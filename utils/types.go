package utils

import "time"

type HTTPClientConfig struct {
	Timeout       time.Duration
	KATimeout     time.Duration
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string
	UserAgent     string
	Headers       map[string]string
}

// BootEntry is one module listed in a boot manifest.
type BootEntry struct {
	URL        string `yaml:"link"`
	OutputPath string `yaml:"op"`
}

const ToolUserAgent = "gameboot/1.0"
