package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := NewConfig(Config{GridPath: "grid.hcl", LogFormat: "json", LogLevel: "warn", WorkerCount: 2})
		require.NoError(t, err)
		assert.Equal(t, "grid.hcl", cfg.GridPath)
	})

	t.Run("list modules needs no grid", func(t *testing.T) {
		_, err := NewConfig(Config{ListModules: true})
		assert.NoError(t, err)
	})

	errCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing grid", Config{}, "GridPath is a required"},
		{"bad format", Config{GridPath: "g", LogFormat: "xml"}, "invalid log format"},
		{"bad level", Config{GridPath: "g", LogLevel: "loud"}, "invalid log level"},
		{"negative workers", Config{GridPath: "g", RowWorkers: -1}, "must not be negative"},
		{"bad port", Config{GridPath: "g", HealthcheckPort: 70000}, "invalid health check port"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
