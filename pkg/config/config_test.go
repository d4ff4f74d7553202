package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 3, cfg.Recap.MurajaahMinTarget)
	assert.Equal(t, 5, cfg.Recap.TopPerformersLimit)
	assert.True(t, cfg.Recap.ScoreZeroMeansAbsent)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DashboardTTL)
	assert.Equal(t, "Madrasah Nuurul Qur'an", cfg.Class.SchoolName)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MURAJAAH_MIN_TARGET", "4")
	t.Setenv("SCORE_ZERO_MEANS_ABSENT", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DASHBOARD_CACHE_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.Recap.MurajaahMinTarget)
	assert.False(t, cfg.Recap.ScoreZeroMeansAbsent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DashboardTTL)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
