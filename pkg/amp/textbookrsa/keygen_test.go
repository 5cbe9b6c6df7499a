package textbookrsa_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/logging"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/primes"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/textbookrsa"
)

// sequence returns a prime source that replays fixed values and counts calls.
func sequence(values ...int64) (primes.Source, *atomic.Int32) {
	var calls atomic.Int32
	return primes.SourceFunc(func(ctx context.Context, bits int) (*big.Int, error) {
		i := int(calls.Add(1)) - 1
		if i >= len(values) {
			return nil, errors.New("sequence exhausted")
		}
		return big.NewInt(values[i]), nil
	}), &calls
}

func TestGenerateKeyPair512(t *testing.T) {
	ctx := context.Background()
	kp, err := textbookrsa.GenerateKeyPair(ctx, 512, textbookrsa.WithRandomSource(randsrc.Crypto()))
	require.NoError(t, err)

	assert.Contains(t, []int{511, 512}, kp.BitLen())
	assert.Equal(t, int64(textbookrsa.DefaultPublicExponent), kp.E().Int64())
	assert.Equal(t, int64(1), new(big.Int).GCD(nil, nil, kp.E(), kp.N()).Int64())

	c, err := textbookrsa.EncryptBytes([]byte("hi"), kp)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), textbookrsa.DecryptBytes(c, kp))
}

func TestGenerateKeyPairRoundTrip(t *testing.T) {
	kp, err := textbookrsa.GenerateKeyPair(context.Background(), 256,
		textbookrsa.WithRandomSource(randsrc.NewSeeded(11)))
	require.NoError(t, err)

	n := kp.N()
	msgs := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(2), new(big.Int).Sub(n, big.NewInt(1))}
	src := randsrc.NewSeeded(12)
	for i := 0; i < 50; i++ {
		m, err := src.Int(big.NewInt(0), new(big.Int).Sub(n, big.NewInt(1)))
		require.NoError(t, err)
		msgs = append(msgs, m)
	}

	for _, m := range msgs {
		c, err := textbookrsa.EncryptInt(m, n, kp.E())
		require.NoError(t, err)
		assert.True(t, c.Sign() >= 0 && c.Cmp(n) < 0)
		got := textbookrsa.DecryptInt(c, n, kp.D())
		assert.Equal(t, 0, got.Cmp(m), "m=%s got=%s", m, got)
	}
}

func TestGenerateKeyPairIsReproducibleWithSeed(t *testing.T) {
	ctx := context.Background()
	a, err := textbookrsa.GenerateKeyPair(ctx, 128, textbookrsa.WithRandomSource(randsrc.NewSeeded(5)))
	require.NoError(t, err)
	b, err := textbookrsa.GenerateKeyPair(ctx, 128, textbookrsa.WithRandomSource(randsrc.NewSeeded(5)))
	require.NoError(t, err)

	bigIntEqual := cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })
	if diff := cmp.Diff(a, b, cmp.AllowUnexported(textbookrsa.KeyPair{}), bigIntEqual); diff != "" {
		t.Fatalf("seeded keypairs differ (-a +b):\n%s", diff)
	}
}

func TestGenerateKeyPairResamplesEqualPrimes(t *testing.T) {
	src, calls := sequence(61, 61, 61, 53)
	kp, err := textbookrsa.GenerateKeyPair(context.Background(), 16,
		textbookrsa.WithPrimeSource(src),
		textbookrsa.WithPublicExponent(big.NewInt(17)))
	require.NoError(t, err)

	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, int64(3233), kp.N().Int64())
	assert.Equal(t, int64(17), kp.E().Int64())
	assert.Equal(t, int64(2753), kp.D().Int64())
}

func TestGenerateKeyPairRestartsWhenExponentNotCoprime(t *testing.T) {
	// φ(7*13) = 72 shares 3 with e; both primes are replaced.
	src, calls := sequence(7, 13, 5, 11)
	kp, err := textbookrsa.GenerateKeyPair(context.Background(), 16,
		textbookrsa.WithPrimeSource(src),
		textbookrsa.WithPublicExponent(big.NewInt(3)))
	require.NoError(t, err)

	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, int64(55), kp.N().Int64())
	assert.Equal(t, int64(27), kp.D().Int64())
}

func TestGenerateKeyPairLogsRejectionsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// 103-1 is a multiple of 17, so the second pair fails the coprimality check.
	src, _ := sequence(61, 61, 103, 61, 61, 53)
	kp, err := textbookrsa.GenerateKeyPair(context.Background(), 16,
		textbookrsa.WithPrimeSource(src),
		textbookrsa.WithPublicExponent(big.NewInt(17)),
		textbookrsa.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, int64(2753), kp.D().Int64())

	var reasons []string
	var accepted map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if r, ok := rec["reason"].(string); ok {
			reasons = append(reasons, r)
		}
		if rec["msg"] == "keypair generated" {
			accepted = rec
		}
	}
	assert.Equal(t, []string{"duplicate_prime", "exponent_not_coprime"}, reasons)
	require.NotNil(t, accepted)
	assert.Equal(t, logging.Placeholder(), accepted["d"])
	assert.Equal(t, float64(12), accepted["modulus_bits"])
}

func TestGenerateKeyPairConcurrentSampling(t *testing.T) {
	kp, err := textbookrsa.GenerateKeyPair(context.Background(), 512,
		textbookrsa.WithRandomSource(randsrc.NewSeeded(8)),
		textbookrsa.WithConcurrentSampling(true))
	require.NoError(t, err)
	assert.Contains(t, []int{511, 512}, kp.BitLen())

	m := big.NewInt(424242)
	c, err := kp.Encrypt(m)
	require.NoError(t, err)
	assert.Equal(t, 0, kp.Decrypt(c).Cmp(m))
}

func TestGenerateKeyPairConcurrentSamplingIsReproducible(t *testing.T) {
	moduli := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		kp, err := textbookrsa.GenerateKeyPair(context.Background(), 256,
			textbookrsa.WithRandomSource(randsrc.NewSeeded(1234)),
			textbookrsa.WithConcurrentSampling(true))
		require.NoError(t, err)
		moduli[kp.N().String()] = struct{}{}
	}
	assert.Len(t, moduli, 1)
}

func TestGenerateKeyPairValidation(t *testing.T) {
	ctx := context.Background()

	for _, bits := range []int{-1, 0, 8, 15} {
		_, err := textbookrsa.GenerateKeyPair(ctx, bits)
		assert.True(t, errors.Is(err, textbookrsa.ErrInvalidBitLength), "bits=%d", bits)
	}

	for _, e := range []int64{-3, 0, 1, 2, 65536} {
		_, err := textbookrsa.GenerateKeyPair(ctx, 64, textbookrsa.WithPublicExponent(big.NewInt(e)))
		assert.True(t, errors.Is(err, textbookrsa.ErrInvalidExponent), "e=%d", e)
	}
}

func TestGenerateKeyPairPropagatesFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := textbookrsa.GenerateKeyPair(ctx, 64)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = textbookrsa.GenerateKeyPair(context.Background(), 64,
		textbookrsa.WithRandomSource(randsrc.NewFixed()))
	assert.True(t, errors.Is(err, randsrc.ErrExhausted))
}

func TestGeneratorIsReusable(t *testing.T) {
	g := textbookrsa.NewGenerator(textbookrsa.WithRandomSource(randsrc.NewSeeded(21)))
	a, err := g.GenerateKeyPair(context.Background(), 128)
	require.NoError(t, err)
	b, err := g.GenerateKeyPair(context.Background(), 128)
	require.NoError(t, err)
	assert.NotEqual(t, 0, a.N().Cmp(b.N()))
}
