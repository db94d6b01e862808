package config

// ServerConfig contains query server configuration
type ServerConfig struct {
	Port          int `yaml:"port" validate:"omitempty,gt=0"`
	CacheSize     int `yaml:"cacheSize" validate:"gte=0"`
	CacheTTLSec   int `yaml:"cacheTTLSec" validate:"gte=0"`
	ShutdownGrace int `yaml:"shutdownGraceSec" validate:"gte=0"`
}

// FeedConfig locates one GTFS static feed on disk
type FeedConfig struct {
	Name string `yaml:"name" validate:"required"`
	// Path is a directory of GTFS .txt files or a .zip archive
	Path       string `yaml:"path" validate:"required"`
	RouteTypes []int  `yaml:"routeTypes" validate:"omitempty,dive,gte=0"`
}

// GraphConfig controls assembly and weighting defaults
type GraphConfig struct {
	// Weight is the default cost model: geographic|distance|travel-time|time
	Weight string `yaml:"weight" validate:"omitempty,oneof=geographic distance travel-time time"`
	// SnapshotPath caches the assembled graph as a gob file when set
	SnapshotPath string `yaml:"snapshotPath"`
	// Workers bounds the all-pairs sweep pool; 0 = number of CPUs
	Workers int `yaml:"workers" validate:"gte=0"`
}

// StoreConfig locates the SQLite database for precomputed results
type StoreConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Graph  GraphConfig  `yaml:"graph"`
	Store  StoreConfig  `yaml:"store"`
	Feeds  []FeedConfig `yaml:"feeds"`
}
