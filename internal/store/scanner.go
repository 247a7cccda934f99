package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/model"
)

const (
	// DescriptorExt is the extension of autotype descriptor files.
	DescriptorExt = ".autotype"
	// CredentialExt is the extension of encrypted credential files.
	CredentialExt = ".gpg"

	sequencePrefix = ":"
)

// ErrStoreRoot is returned when the store root cannot be read.
var ErrStoreRoot = errors.New("password store not accessible")

// Scanner walks a password store for autotype descriptors.
type Scanner struct {
	Root            string
	DescriptorExt   string
	CredentialExt   string
	DefaultSequence string // for descriptors without a sequence line
	Logger          *log.Logger
}

// NewScanner returns a Scanner with the default file extensions.
func NewScanner(root string, logger *log.Logger) *Scanner {
	return &Scanner{
		Root:            root,
		DescriptorExt:   DescriptorExt,
		CredentialExt:   CredentialExt,
		DefaultSequence: model.DefaultSequence,
		Logger:          logger,
	}
}

// Scan walks the store and returns every valid descriptor keyed by the path
// of its credential file. The store is read fresh on every call.
//
// Descriptors without a sibling credential file and descriptors without any
// match pattern are skipped. Unreadable subdirectories are skipped; an
// unreadable root is an error.
func (s *Scanner) Scan() (map[string]*model.Descriptor, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrStoreRoot, s.Root)
	}

	// WalkDir does not descend into a symlinked root, so walk its target and
	// report paths under Root.
	walkRoot, err := filepath.EvalSymlinks(s.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRoot, err)
	}

	descriptors := make(map[string]*model.Descriptor)
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			s.Logger.Warn("skipping unreadable path", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), s.DescriptorExt) {
			return nil
		}
		if rel, err := filepath.Rel(walkRoot, path); err == nil {
			path = filepath.Join(s.Root, rel)
		}

		credPath := strings.TrimSuffix(path, s.DescriptorExt) + s.CredentialExt
		if _, err := os.Stat(credPath); err != nil {
			s.Logger.Debug("descriptor without credential", "descriptor", path)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.Logger.Warn("skipping unreadable descriptor", "descriptor", path, "err", err)
			return nil
		}

		desc, ok := ParseDescriptor(credPath, string(data), s.DefaultSequence)
		if !ok {
			s.Logger.Debug("descriptor without match patterns", "descriptor", path)
			return nil
		}
		s.Logger.Debug("descriptor", "path", desc.Path, "patterns", desc.Patterns, "sequence", desc.Sequence)
		descriptors[credPath] = desc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRoot, err)
	}
	return descriptors, nil
}

// ParseDescriptor parses the content of a descriptor file for the credential
// at credPath. Lines starting with ":" are sequences (the first one wins,
// defaultSequence applies when there is none); every other non-empty line is
// a literal match pattern. It reports false when the file declares no match
// pattern.
func ParseDescriptor(credPath, content, defaultSequence string) (*model.Descriptor, bool) {
	var sequences []string
	seen := make(map[string]bool)
	var patterns []string

	for _, line := range splitLines(content) {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, sequencePrefix) {
			sequences = append(sequences, line)
			continue
		}
		if !seen[line] {
			seen[line] = true
			patterns = append(patterns, line)
		}
	}
	if len(patterns) == 0 {
		return nil, false
	}
	sort.Strings(patterns)

	sequence := defaultSequence
	if sequence == "" {
		sequence = model.DefaultSequence
	}
	if len(sequences) > 0 {
		sequence = sequences[0]
	}
	return &model.Descriptor{
		Path:     credPath,
		Patterns: patterns,
		Sequence: sequence,
	}, true
}

// splitLines splits on \n, \r\n and lone \r. Lines are not trimmed: a line
// made of spaces is a valid pattern.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
