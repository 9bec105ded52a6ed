package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanMods/cfapi/apierr"
)

func TestParseConfigPath(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("api_key: k"), 0644))
	wrongExt := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(wrongExt, []byte("{}"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.yaml"), 0755))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid absolute path to existing file", path: valid},
		{name: "empty path", path: "", wantErr: "is empty"},
		{name: "relative path", path: "config.yaml", wantErr: "must be absolute"},
		{name: "traversal", path: dir + "/../config.yaml", wantErr: "parent traversal"},
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), wantErr: "does not exist"},
		{name: "directory", path: filepath.Join(dir, "dir.yaml"), wantErr: "is a directory"},
		{name: "wrong extension", path: wrongExt, wantErr: ".yaml or .yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.path)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.path, got)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apierr.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
