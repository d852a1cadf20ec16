package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the top-level shadowme configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	CSS     CSSConfig     `mapstructure:"css" yaml:"css"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// StorageConfig locates the durable store for saved shadows.
type StorageConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// CSSConfig tunes the derivation engine.
type CSSConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
