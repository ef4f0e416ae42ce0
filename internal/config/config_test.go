package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DIRECTORY_SOURCE", "")
	t.Setenv("POPUP_IDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Directory.Source)
	assert.True(t, cfg.Directory.IncludeMobile)
	assert.Equal(t, "582", cfg.Directory.ExtensionOfficeCode)
	assert.Equal(t, []string{"p1", "p2"}, cfg.Popup.IDs)
	assert.Equal(t, 10*time.Second, cfg.Directory.FetchTimeout())
}

func TestLoad_DirectoryOverrides(t *testing.T) {
	t.Setenv("DIRECTORY_SOURCE", "URL")
	t.Setenv("DIRECTORY_DATA_URL", "http://roster.local/employees.json")
	t.Setenv("DIRECTORY_STRIP_ORG_PREFIX", "true")
	t.Setenv("DIRECTORY_ORG_PREFIX", "ACME ")
	t.Setenv("DIRECTORY_INCLUDE_MOBILE", "false")
	t.Setenv("POPUP_IDS", " notice , ,event ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceURL, cfg.Directory.Source)
	assert.True(t, cfg.Directory.StripOrgPrefix)
	assert.Equal(t, "ACME ", cfg.Directory.OrgPrefix)
	assert.False(t, cfg.Directory.IncludeMobile)
	assert.Equal(t, []string{"notice", "event"}, cfg.Popup.IDs)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"DIRECTORY_SOURCE": "ftp"}},
		{"url source without url", map[string]string{"DIRECTORY_SOURCE": "url", "DIRECTORY_DATA_URL": ""}},
		{"postgres source without dsn", map[string]string{"DIRECTORY_SOURCE": "postgres", "POSTGRES_DSN": ""}},
		{"bad redis db", map[string]string{"REDIS_DB": "x"}},
		{"bad timezone", map[string]string{"POPUP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
