package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "3000", config.Server.Port)
	require.Equal(t, "Asia/Beirut", config.App.Timezone)
	require.Equal(t, "Markdown", config.Telegram.ParseMode)
	require.Equal(t, 10*time.Second, config.Telegram.RequestTimeout)
	require.Equal(t, int64(10<<20), config.Server.MaxUploadSize)
	require.False(t, config.RateLimit.Enabled)
	require.ErrorIs(t, config.Validate(), ErrMissingCredentials)
}
func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("server:\n  port: \"9090\"\ntelegram:\n  chat_id: \"from-file\"\n  parse_mode: \"\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0644))
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("APP_MODE", "production")
	config, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "9090", config.Server.Port)
	require.Equal(t, "env-token", config.Telegram.BotToken)
	require.Equal(t, "from-file", config.Telegram.ChatID)
	require.Equal(t, "", config.Telegram.ParseMode)
	require.True(t, config.IsProduction())
	require.NoError(t, config.Validate())
}
func TestLoadConfig_ModeAlias(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("NODE_ENV", "production")
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.True(t, config.IsProduction())
}
func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server: [\n"), 0644))
	_, err := LoadConfig(dir)
	require.Error(t, err)
}
func TestLoadConfig_UnsupportedParseMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("telegram:\n  parse_mode: \"HTML\"\n"), 0644))
	_, err := LoadConfig(dir)
	require.ErrorIs(t, err, ErrUnsupportedParseMode)
}
func TestLoadConfig_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, config.Server.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.0/8")
	config, err = LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, config.Server.TrustedProxies)
}
