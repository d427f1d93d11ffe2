package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spotifyauth/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigFresh struct {
	Value string `env:"TEST_STRING_FRESH"`
}

type TestConfigFile struct {
	Value string `env:"TEST_STRING_FROM_FILE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Singleton(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first_value", second.TestString, "cached value should be returned")

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString, "reset cache should re-read the environment")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestRead_NotCached(t *testing.T) {
	t.Setenv("TEST_STRING_FRESH", "one")

	var first TestConfigFresh
	require.NoError(t, config.Read(&first))
	assert.Equal(t, "one", first.Value)

	t.Setenv("TEST_STRING_FRESH", "two")

	var second TestConfigFresh
	require.NoError(t, config.Read(&second))
	assert.Equal(t, "two", second.Value)
}

func TestRead_MissingValueIsEmpty(t *testing.T) {
	os.Unsetenv("TEST_STRING_FRESH")

	var cfg TestConfigFresh
	require.NoError(t, config.Read(&cfg))
	assert.Empty(t, cfg.Value)
}

func TestRead_Errors(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	assert.ErrorIs(t, config.Read(&cfg), config.ErrParsingConfig)

	var nilCfg *RequiredConfig
	assert.ErrorIs(t, config.Read(nilCfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_STRING_FROM_FILE")
	t.Cleanup(func() { os.Unsetenv("TEST_STRING_FROM_FILE") })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_STRING_FROM_FILE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg TestConfigFile
	require.NoError(t, config.Read(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
