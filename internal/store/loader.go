package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/model"
)

// Decrypter returns the decrypted content of a credential as a list of
// non-empty, trimmed lines. name is the store-relative entry name
// (e.g. "web/github").
type Decrypter interface {
	Decrypt(ctx context.Context, name string) ([]string, error)
}

// Loader materializes credential entries from credential file paths.
type Loader struct {
	Root      string
	Decrypter Decrypter
	Logger    *log.Logger
}

// NewLoader returns a Loader for the store at root.
func NewLoader(root string, decrypter Decrypter, logger *log.Logger) *Loader {
	return &Loader{Root: root, Decrypter: decrypter, Logger: logger}
}

// Load decrypts the credential at credPath and parses it into an Entry.
// Only a failing decrypt command is an error; empty output yields an entry
// without a password.
func (l *Loader) Load(ctx context.Context, credPath string) (*model.Entry, error) {
	group, name, err := l.EntryName(credPath)
	if err != nil {
		return nil, err
	}

	passName := name
	if group != model.RootGroup {
		passName = group + "/" + name
	}
	lines, err := l.Decrypter.Decrypt(ctx, passName)
	if err != nil {
		return nil, err
	}

	entry := &model.Entry{Group: group, Name: name}
	entry.Fields = ParseFields(lines, func(line string) {
		l.Logger.Debug("ignoring metadata line without colon", "entry", passName)
	})
	return entry, nil
}

// EntryName derives the group (store-relative directory, "/" at the root)
// and name (base name without extension) of a credential file.
func (l *Loader) EntryName(credPath string) (group, name string, err error) {
	rel, err := filepath.Rel(l.Root, credPath)
	if err != nil {
		return "", "", fmt.Errorf("credential %s is outside the store: %w", credPath, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", "", fmt.Errorf("credential %s is outside the store %s", credPath, l.Root)
	}

	group = model.RootGroup
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		group = rel[:i]
		rel = rel[i+1:]
	}
	name = strings.TrimSuffix(rel, filepath.Ext(rel))
	return group, name, nil
}

// ParseFields turns decrypted lines into the field map of an entry. The first
// line is the password; every following line is split on its first colon into
// a key and a value with leading whitespace removed. Lines without a colon are
// passed to skipped, if non-nil, and otherwise ignored.
func ParseFields(lines []string, skipped func(line string)) map[string]string {
	fields := make(map[string]string)
	if len(lines) == 0 {
		return fields
	}
	fields[model.FieldPassword] = lines[0]

	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			if skipped != nil {
				skipped(line)
			}
			continue
		}
		fields[key] = strings.TrimLeftFunc(value, unicode.IsSpace)
	}
	return fields
}
