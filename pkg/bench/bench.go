// Package bench runs the insert, enumerate and remove round trip over random words
// and reports how long each phase took.
package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/rs/zerolog"
)

var (
	ErrMismatch = errors.New("enumerated words do not match the inserted ones")
	ErrNotEmpty = errors.New("trie is not empty after removing every word")
)

type Config struct {
	Count    int
	MinLen   int
	MaxLen   int
	Alphabet string
	Seed     uint64 // 0 picks a random seed
	Strict   bool   // stop at the first word that can not be removed
}

type Report struct {
	Seed     uint64
	Count    int
	Nodes    int // nodes after inserting every word
	Missing  int // words that could not be removed
	Insert   time.Duration
	Retrieve time.Duration
	Remove   time.Duration
}

// Samples generates up to count distinct words with lengths in [minLen, maxLen],
// sorted. Fewer words are returned if the alphabet can not produce enough of them.
func Samples(rng *rand.Rand, count int, minLen int, maxLen int, alphabet []rune) []string {
	if len(alphabet) == 0 || maxLen < minLen {
		return []string{}
	}

	seen := make(map[string]struct{}, count)
	samples := make([]string, 0, count)
	for attempts := 0; len(samples) < count && attempts < count*10; attempts++ {
		word := make([]rune, minLen+rng.IntN(maxLen-minLen+1))
		for i := range word {
			word[i] = alphabet[rng.IntN(len(alphabet))]
		}
		if _, dup := seen[string(word)]; dup {
			continue
		}
		seen[string(word)] = struct{}{}
		samples = append(samples, string(word))
	}
	slices.Sort(samples)
	return samples
}

// Run inserts cfg.Count random words into a new trie, reads them back, checks
// that exactly the inserted words came out and removes them all again.
func Run(cfg Config, logger zerolog.Logger) (*Report, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	report := &Report{Seed: seed}

	samples := Samples(rng, cfg.Count, cfg.MinLen, cfg.MaxLen, []rune(cfg.Alphabet))
	report.Count = len(samples)
	logger.Debug().Uint64("seed", seed).Int("samples", len(samples)).Msg("generated samples")

	begin := time.Now()
	t := trie.From(samples...)
	report.Insert = time.Since(begin)
	report.Nodes = t.NodeCount()
	logger.Info().Dur("took", report.Insert).Int("nodes", report.Nodes).Msg("inserting done")

	begin = time.Now()
	retrieved := slices.Collect(t.Content(""))
	report.Retrieve = time.Since(begin)
	logger.Info().Dur("took", report.Retrieve).Int("words", len(retrieved)).Msg("retrieving done")

	slices.Sort(retrieved)
	if !slices.Equal(samples, retrieved) {
		return report, fmt.Errorf("%w: inserted %d, retrieved %d", ErrMismatch, len(samples), len(retrieved))
	}

	begin = time.Now()
	for _, word := range samples {
		if err := t.Remove(word); err != nil {
			if cfg.Strict {
				return report, err
			}
			report.Missing++
			logger.Warn().Err(err).Msg("word could not be removed")
		}
	}
	report.Remove = time.Since(begin)
	logger.Info().Dur("took", report.Remove).Int("missing", report.Missing).Msg("removing done")

	if !t.IsEmpty() {
		return report, fmt.Errorf("%w: %d nodes left", ErrNotEmpty, t.NodeCount())
	}
	return report, nil
}
