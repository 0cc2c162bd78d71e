package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "t0ken")
	t.Setenv("RADAR_WINDOW_HOURS", "")
	t.Setenv("RADAR_REPO", "")
	t.Setenv("RADAR_SEARCH", "")
	t.Setenv("RADAR_OUTPUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "t0ken", cfg.GitHubToken)
	assert.Equal(t, "openclaw/openclaw", cfg.Repo)
	assert.Equal(t, "openclaw", cfg.SearchTerm)
	assert.Equal(t, 24, cfg.WindowHours)
	assert.Equal(t, "github_radar.json", cfg.OutputPath)

	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadWindow(t *testing.T) {
	for _, bad := range []string{"soon", "0", "-3"} {
		t.Setenv("RADAR_WINDOW_HOURS", bad)
		_, err := Load()
		assert.Error(t, err, "window %q should be rejected", bad)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Repo: "a/b", SearchTerm: "a", WindowHours: 24}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")

	cfg.GitHubToken = "t0ken"
	assert.NoError(t, cfg.Validate())

	err = cfg.ValidateNotion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_API_KEY")

	cfg.NotionAPIKey = "secret"
	err = cfg.ValidateNotion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_PARENT_PAGE_ID")

	cfg.NotionParentPageID = "page"
	assert.NoError(t, cfg.ValidateNotion())
}
