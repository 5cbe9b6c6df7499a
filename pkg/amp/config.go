package amp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/logging"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/millerrabin"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/textbookrsa"
)

// Config carries the knobs of an Engine.
type Config struct {
	// Rounds is the Miller-Rabin round count used by Engine.IsProbablePrime.
	// Prime sampling for keys always uses millerrabin.KeyGenRounds.
	Rounds int `yaml:"rounds"`

	// KeyBits is the modulus size requested by Engine.GenerateKeyPair.
	KeyBits int `yaml:"key_bits"`

	// PublicExponent must be odd and at least 3.
	PublicExponent int64 `yaml:"public_exponent"`

	// Seed, when set, replaces crypto/rand with a deterministic stream. Only
	// use it for tests and demonstrations. Keys stay reproducible with
	// ConcurrentSampling because each prime search gets its own split stream.
	Seed *uint64 `yaml:"seed,omitempty"`

	// ConcurrentSampling searches for the two primes of a key in parallel.
	ConcurrentSampling bool `yaml:"concurrent_sampling"`

	// Logger receives key generation events. Nil discards them.
	Logger logging.Logger `yaml:"-"`
}

// DefaultConfig returns 10 oracle rounds, 2048-bit keys and e = 65537 over
// crypto/rand.
func DefaultConfig() Config {
	return Config{
		Rounds:         millerrabin.DefaultRounds,
		KeyBits:        2048,
		PublicExponent: textbookrsa.DefaultPublicExponent,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	if c.KeyBits < textbookrsa.MinBitLength {
		return fmt.Errorf("%w: key_bits must be at least %d, got %d", ErrInvalidConfig, textbookrsa.MinBitLength, c.KeyBits)
	}
	if c.PublicExponent < 3 || c.PublicExponent%2 == 0 {
		return fmt.Errorf("%w: public_exponent must be odd and at least 3, got %d", ErrInvalidConfig, c.PublicExponent)
	}
	return nil
}

// Source returns the random source selected by the config.
func (c Config) Source() randsrc.Source {
	if c.Seed != nil {
		return randsrc.NewSeeded(*c.Seed)
	}
	return randsrc.Crypto()
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values; unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	absPath, err := SecurePath(path)
	if err != nil {
		return cfg, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return cfg, fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
