package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/reviewlab/landr/internal/utils"
)

var (
	home, _           = os.UserHomeDir()
	DefaultConfigPath = filepath.Join(home, ".landr", "config.json")
	DefaultLogFilePath = filepath.Join(home, ".landr", "logs", "landr.log")
)

var (
	ErrNoServerURL  = errors.New("config: server_url missing")
	ErrNoOwner      = errors.New("config: owner missing")
	ErrNoWorkingDir = errors.New("config: working_copy missing")
)

// Config is the landr client configuration, stored as JSON on disk.
type Config struct {
	// Owner is the review-server account whose revisions are landed.
	Owner string `json:"owner"`
	// ServerURL is the base URL of the review server.
	ServerURL string `json:"server_url"`
	// WorkingCopy is the root of the Subversion working copy commits run in.
	WorkingCopy string `json:"working_copy"`
	// CommitHooks is true when the repository has server-side commit hooks
	// that notify the review server on their own. When false, landr marks
	// the revision committed itself after a successful commit.
	CommitHooks bool `json:"commit_hooks"`

	Path string `json:"-"`
}

func (c *Config) Validate() error {
	if c.Owner == "" {
		return ErrNoOwner
	}

	if c.ServerURL == "" {
		return ErrNoServerURL
	}

	if _, err := url.ParseRequestURI(c.ServerURL); err != nil {
		return fmt.Errorf("config: invalid server_url %q: %w", c.ServerURL, err)
	}

	if c.WorkingCopy == "" {
		return ErrNoWorkingDir
	}

	return nil
}

func (c *Config) Save(path string) error {
	if err := utils.EnsureParent(path); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Path = path
	return &cfg, nil
}
