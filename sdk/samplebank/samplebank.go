// Package samplebank loads a directory of audio files into an ordered,
// immutable bank of playable samples. Files are ordered by natural sort of
// their names so numbered samples line up regardless of digit count.
package samplebank

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hatkit/pianohat/sdk/contracts"
)

// Bank is an immutable, ordered collection of loaded samples.
type Bank struct {
	files   []string
	samples []contracts.Sample
}

// Load globs dir with each extension pattern (e.g. "*.wav", "*.ogg"),
// orders the matches naturally and eagerly decodes every file through the
// engine. A missing directory or a failed decode aborts the load; a
// directory with no matches yields a valid empty bank.
func Load(engine contracts.Engine, logger contracts.Logger, dir string, patterns []string) (*Bank, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("sample bank: %w", err)
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("sample bank: pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return naturalLess(files[i], files[j])
	})

	logger.Info("loading samples",
		logger.Field().String("dir", dir),
		logger.Field().Int("count", len(files)))

	samples := make([]contracts.Sample, len(files))
	for i, file := range files {
		s, err := engine.LoadSample(file)
		if err != nil {
			return nil, fmt.Errorf("sample bank: loading %s: %w", file, err)
		}
		samples[i] = s
	}
	return &Bank{files: files, samples: samples}, nil
}

// Len returns the number of loaded samples.
func (b *Bank) Len() int {
	return len(b.samples)
}

// Octaves returns how many full twelve-note octaves the bank covers.
func (b *Bank) Octaves() int {
	return len(b.samples) / 12
}

// Sample returns the sample at index i, or false when i is out of range.
func (b *Bank) Sample(i int) (contracts.Sample, bool) {
	if i < 0 || i >= len(b.samples) {
		return nil, false
	}
	return b.samples[i], true
}

// File returns the source path of the sample at index i, or "" when out of
// range.
func (b *Bank) File(i int) string {
	if i < 0 || i >= len(b.files) {
		return ""
	}
	return b.files[i]
}
