package amp_test

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neuer2718/applied-math-playground/pkg/amp"
)

// writeConfig writes contents to a file inside the working directory, where
// LoadConfig is allowed to read.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(".", "amp-config-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(f.Name()) })

	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := amp.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Rounds)
	assert.Equal(t, 2048, cfg.KeyBits)
	assert.Equal(t, int64(65537), cfg.PublicExponent)
	assert.Nil(t, cfg.Seed)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*amp.Config)
	}{
		{"zero_rounds", func(c *amp.Config) { c.Rounds = 0 }},
		{"small_key", func(c *amp.Config) { c.KeyBits = 8 }},
		{"even_exponent", func(c *amp.Config) { c.PublicExponent = 4 }},
		{"exponent_one", func(c *amp.Config) { c.PublicExponent = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := amp.DefaultConfig()
			tt.mutate(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), amp.ErrInvalidConfig))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
rounds: 40
key_bits: 1024
public_exponent: 3
seed: 1234
concurrent_sampling: true
`)
	cfg, err := amp.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Rounds)
	assert.Equal(t, 1024, cfg.KeyBits)
	assert.Equal(t, int64(3), cfg.PublicExponent)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(1234), *cfg.Seed)
	assert.True(t, cfg.ConcurrentSampling)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := amp.LoadConfig(writeConfig(t, "key_bits: 512\n"))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.KeyBits)
	assert.Equal(t, 10, cfg.Rounds)
	assert.Equal(t, int64(65537), cfg.PublicExponent)

	cfg, err = amp.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, amp.DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := amp.LoadConfig(writeConfig(t, "roundz: 3\n"))
	assert.Error(t, err, "unknown field")

	_, err = amp.LoadConfig(writeConfig(t, "public_exponent: 4\n"))
	assert.True(t, errors.Is(err, amp.ErrInvalidConfig))

	_, err = amp.LoadConfig(filepath.Join("..", "escape.yaml"))
	assert.ErrorContains(t, err, "escapes working directory")

	_, err = amp.LoadConfig("does-not-exist.yaml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConfigSourceSelection(t *testing.T) {
	seed := uint64(9)
	cfg := amp.DefaultConfig()
	cfg.Seed = &seed

	hi := new(big.Int).Lsh(big.NewInt(1), 64)
	a, err := cfg.Source().Int(big.NewInt(0), hi)
	require.NoError(t, err)
	b, err := cfg.Source().Int(big.NewInt(0), hi)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b), "seeded sources replay the same stream")

	cfg.Seed = nil
	_, err = cfg.Source().Int(big.NewInt(0), hi)
	require.NoError(t, err)
}
