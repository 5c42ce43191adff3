package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(AppConfig{Name: "marketplace-test", LogPath: dir, Debug: true})
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	content, err := os.ReadFile(filepath.Join(dir, "marketplace-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello")
}
