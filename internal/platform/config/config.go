package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultServer = "http://localhost:3000"
	envServer     = "STUDYRANK_SERVER"
)

type Config struct {
	DataDir   string
	ServerURL string
	DBPath    string
	LogPath   string
}

// fileConfig is the on-disk shape of <data-dir>/config.yaml.
type fileConfig struct {
	Server string `yaml:"server"`
}

// New resolves configuration for the given data directory. The server base
// URL is resolved flag > env > config file > default; serverFlag carries the
// flag value and may be empty.
func New(dataDir, serverFlag string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".studyrank")
	}

	server := defaultServer
	if fromFile, err := readFileServer(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	} else if fromFile != "" {
		server = fromFile
	}
	if env := os.Getenv(envServer); env != "" {
		server = env
	}
	if serverFlag != "" {
		server = serverFlag
	}

	return Config{
		DataDir:   dataDir,
		ServerURL: strings.TrimRight(server, "/"),
		DBPath:    filepath.Join(dataDir, "studyrank.db"),
		LogPath:   filepath.Join(dataDir, "studyrank.log"),
	}, nil
}

func readFileServer(path string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return "", fmt.Errorf("decode config: %w", err)
	}
	return strings.TrimSpace(cfg.Server), nil
}
