package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Empty(t, cfg.Journal.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "with journal",
			config: &Config{
				Output:  OutputConfig{Dir: "reports"},
				Journal: JournalConfig{Path: "tracker.sqlite"},
				Log:     LogConfig{Level: "debug", Format: "json"},
			},
			wantErr: false,
		},
		{
			name: "missing output dir",
			config: &Config{
				Log: LogConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
			errMsg:  "output.dir is required",
		},
		{
			name: "unknown log level",
			config: &Config{
				Output: OutputConfig{Dir: "."},
				Log:    LogConfig{Level: "verbose", Format: "console"},
			},
			wantErr: true,
			errMsg:  "log.level must be one of",
		},
		{
			name: "unknown log format",
			config: &Config{
				Output: OutputConfig{Dir: "."},
				Log:    LogConfig{Level: "info", Format: "xml"},
			},
			wantErr: true,
			errMsg:  "log.format must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Journal.Path = "archive.sqlite"
			cfg.Log.Level = "info"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  path: ./tracker.sqlite\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./tracker.sqlite", cfg.Journal.Path)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}
