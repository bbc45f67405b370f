package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"contentteam/internal/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONTENTTEAM_AI_PROVIDER", "CONTENTTEAM_API_KEY", "CONTENTTEAM_MODEL",
		"CONTENTTEAM_BASE_URL", "CONTENTTEAM_LOG_LEVEL", "CONTENTTEAM_DB_PATH",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "LMSTUDIO_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
ai:
  provider: openai
  base_url: http://127.0.0.1:1234/v1
agents:
  max_rounds: 5
  roles:
    content_writer:
      temperature: 0.9
scoring:
  quality:
    weights:
      readability: 1
      cultural: 1
      mobile: 1
      engagement: 1
regional:
  target_regions: [pune, nagpur]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 120, cfg.AI.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Agents.MaxRounds)
	assert.InDelta(t, 0.9, cfg.Agents.Roles[team.RoleWriter].Temp(), 1e-6)
	assert.Equal(t, team.DefaultRoleSettings()[team.RoleEditor], cfg.Agents.Roles[team.RoleEditor])
	assert.Equal(t, 1.0, cfg.Scoring.Quality.Weights.Mobile)
	assert.Equal(t, 85.0, cfg.Scoring.Quality.CulturalPresent)
	assert.Equal(t, 25, cfg.Scoring.Readability.MaxSentenceWords)
	assert.Equal(t, []string{"pune", "nagpur"}, cfg.Regional.TargetRegions)
	assert.Equal(t, "INR", cfg.Regional.CulturalContext.Currency)
	assert.Equal(t, "contentteam.db", cfg.Storage.Path)
}

func TestLoadConfig_ZeroTemperatureIsKept(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
agents:
  roles:
    seo_specialist:
      temperature: 0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	seo := cfg.Agents.Roles[team.RoleSEO]
	require.NotNil(t, seo.Temperature)
	assert.Zero(t, seo.Temp())
}

func TestLoadConfig_Standards(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
agents:
  enforce_standards: true
  standards:
    - name: readability
      description: Short sentences
      min_score: 70
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Agents.EnforceStandards)
	require.Len(t, cfg.Agents.Standards, 1)
	assert.Equal(t, team.StandardReadability, cfg.Agents.Standards[0].Name)
	assert.Equal(t, 70.0, cfg.Agents.Standards[0].MinScore)

	_, err = LoadConfig(writeConfig(t, "agents:\n  standards:\n    - name: vibes\n      min_score: 50\n"))
	assert.ErrorContains(t, err, "oneof")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENTTEAM_AI_PROVIDER", "OpenAI")
	t.Setenv("CONTENTTEAM_MODEL", "gpt-4o-mini")
	t.Setenv("CONTENTTEAM_LOG_LEVEL", "DEBUG")
	t.Setenv("CONTENTTEAM_DB_PATH", "/tmp/runs.db")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/runs.db", cfg.Storage.Path)
}

func TestLoadConfig_ExplicitKeyWinsOverProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENTTEAM_API_KEY", "explicit")
	t.Setenv("GEMINI_API_KEY", "fallback")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.AI.APIKey)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
ai:
  provider: azure
log:
  level: loud
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "Config.AI.Provider")
	assert.ErrorContains(t, err, "oneof")
	assert.ErrorContains(t, err, "Config.Log.Level")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "ai: [unclosed\n")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate_RequiresStoragePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = ""
	assert.ErrorContains(t, Validate(cfg), "Config.Storage.Path")
}

func TestAIConfig_Options(t *testing.T) {
	opts := AIConfig{Provider: "lmstudio", TimeoutSeconds: 300, RequestsPerMinute: 30}.Options()
	assert.Equal(t, "lmstudio", opts.Provider)
	assert.Equal(t, 5*time.Minute, opts.Timeout)
	assert.Equal(t, 30.0, opts.RequestsPerMinute)
}
