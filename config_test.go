package seqbuffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// resetConfig puts the package defaults back once the environment of the
// test has been restored
func resetConfig(t *testing.T) {
	t.Cleanup(func() {
		_ = initConfig()
		EnableLogging(false)
	})
}

func clearConfigEnv(t *testing.T) {
	t.Setenv(envPrefix+"CONF", "")
	for _, key := range configKeys {
		t.Setenv(envPrefix+key, "")
		os.Unsetenv(envPrefix + key)
	}
}

func TestConfigDefaults(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	require.NoError(t, initConfig())
	assert.Empty(t, confPath)
	assert.Zero(t, defaultGrowthFactor)
	assert.Equal(t, BigEndian, defaultOrder)

	b := MustNewSequentialBuffer(4)
	assert.Zero(t, b.GrowthFactor())
	assert.Equal(t, BigEndian, b.Order())
}

func TestConfigEnvironment(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	t.Setenv(envPrefix+growthFactorKey, "3")
	t.Setenv(envPrefix+byteOrderKey, "le")

	require.NoError(t, initConfig())

	b := MustNewSequentialBuffer(4)
	assert.Equal(t, 3.0, b.GrowthFactor())
	assert.Equal(t, LittleEndian, b.Order())

	b = MustNewSequentialBuffer(4, WithByteOrder(BigEndian), WithAutoGrow(false))
	assert.Zero(t, b.GrowthFactor(), "options take precedence over the configuration")
	assert.Equal(t, BigEndian, b.Order())
}

func TestConfigGrowthShorthand(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	for val, expected := range map[string]float64{
		"true":  2,
		"false": 0,
		"0":     0,
		"1.25":  1.25,
	} {
		t.Setenv(envPrefix+growthFactorKey, val)
		require.NoError(t, initConfig(), val)
		assert.Equal(t, expected, defaultGrowthFactor, val)
	}
}

func TestConfigFile(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	loc := filepath.Join(t.TempDir(), "seqbuffer.conf")
	content := "# defaults for tests\nGROWTH_FACTOR=4\n  BYTE_ORDER=little\nnot a setting\nLOGGING=false\n"
	require.NoError(t, os.WriteFile(loc, []byte(content), 0644))

	t.Setenv(envPrefix+"CONF", loc)
	require.NoError(t, initConfig())

	assert.Equal(t, loc, confPath)
	assert.Equal(t, 4.0, defaultGrowthFactor)
	assert.Equal(t, LittleEndian, defaultOrder)
	assert.NotContains(t, config, "not a setting")

	// the environment overrides the file
	t.Setenv(envPrefix+byteOrderKey, "big")
	require.NoError(t, initConfig())
	assert.Equal(t, 4.0, defaultGrowthFactor)
	assert.Equal(t, BigEndian, defaultOrder)
}

func TestConfigMissingFile(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	t.Setenv(envPrefix+"CONF", filepath.Join(t.TempDir(), "missing.conf"))
	t.Setenv(envPrefix+growthFactorKey, "2")

	err := initConfig()
	require.Error(t, err)
	assert.Equal(t, 2.0, defaultGrowthFactor, "the environment still applies")
}

func TestConfigInvalidValues(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	t.Setenv(envPrefix+growthFactorKey, "1")
	t.Setenv(envPrefix+byteOrderKey, "middle")
	t.Setenv(envPrefix+loggingKey, "sometimes")

	err := initConfig()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	for _, e := range errs {
		assert.Equal(t, ErrInvalidConfiguration, errors.Cause(e))
	}

	assert.Zero(t, defaultGrowthFactor)
	assert.Equal(t, BigEndian, defaultOrder)
	assert.False(t, logging)
}

func TestConfigLogging(t *testing.T) {
	resetConfig(t)
	clearConfigEnv(t)

	t.Setenv(envPrefix+loggingKey, "true")
	require.NoError(t, initConfig())
	assert.True(t, logging)
}
