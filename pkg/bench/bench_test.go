package bench

import (
	"math/rand/v2"
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	samples := Samples(rng, 1000, 30, 60, []rune("abcdefghijklmnopqrstuvwxyz"))

	require.Len(t, samples, 1000)
	assert.True(t, slices.IsSorted(samples))
	assert.Len(t, slices.Compact(slices.Clone(samples)), 1000, "samples should be distinct")
	for _, sample := range samples {
		length := utf8.RuneCountInString(sample)
		assert.GreaterOrEqual(t, length, 30)
		assert.LessOrEqual(t, length, 60)
	}
}

func TestSamplesSmallAlphabet(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	samples := Samples(rng, 100, 1, 2, []rune("ab"))
	assert.ElementsMatch(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, samples, "only six words exist")
}

func TestSamplesUnicode(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, sample := range Samples(rng, 20, 3, 3, []rune("äöü")) {
		assert.Equal(t, 3, utf8.RuneCountInString(sample))
	}
}

func TestSamplesInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Empty(t, Samples(rng, 10, 1, 2, nil))
	assert.Empty(t, Samples(rng, 10, 3, 2, []rune("ab")))
}

func TestRun(t *testing.T) {
	report, err := Run(Config{
		Count:    10_000,
		MinLen:   30,
		MaxLen:   60,
		Alphabet: "abcdefghijklmnopqrstuvwxyz",
		Seed:     42,
		Strict:   true,
	}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, uint64(42), report.Seed)
	assert.Equal(t, 10_000, report.Count)
	assert.Zero(t, report.Missing)
	assert.Greater(t, report.Nodes, report.Count)
}

func TestRunRandomSeed(t *testing.T) {
	report, err := Run(Config{Count: 10, MinLen: 1, MaxLen: 5, Alphabet: "xyz"}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotZero(t, report.Seed)
	assert.Equal(t, 10, report.Count)
}
