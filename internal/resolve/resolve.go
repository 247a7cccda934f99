// Package resolve turns matched descriptors into the single credential
// entry to type, asking the user to choose when several match.
package resolve

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/model"
)

// Columns are the picker columns, in row order.
var Columns = []string{"Index", "Group", "Name", "User"}

// Loader loads the credential entry paired with a descriptor.
type Loader interface {
	Load(ctx context.Context, credPath string) (*model.Entry, error)
}

// Picker asks the user to choose one row. ok is false when the user
// cancelled.
type Picker interface {
	Pick(ctx context.Context, columns []string, rows [][]string) (index int, ok bool, err error)
}

// Resolver loads matched entries and disambiguates between them.
type Resolver struct {
	Loader    Loader
	Picker    Picker
	UserField string
	Logger    *log.Logger
}

// Resolve loads every matched descriptor and returns the chosen entry. It
// returns a nil entry without error when nothing matched or the user
// cancelled the picker.
func (r *Resolver) Resolve(ctx context.Context, matched []*model.Descriptor) (*model.Entry, error) {
	if len(matched) == 0 {
		return nil, nil
	}

	entries := make([]*model.Entry, 0, len(matched))
	for _, desc := range matched {
		entry, err := r.Loader.Load(ctx, desc.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", desc.Path, err)
		}
		entry.Sequence = desc.Sequence
		entries = append(entries, entry)
	}

	if len(entries) == 1 {
		return entries[0], nil
	}

	rows := Rows(entries, r.UserField)
	index, ok, err := r.Picker.Pick(ctx, Columns, rows)
	if err != nil {
		return nil, fmt.Errorf("pick entry: %w", err)
	}
	if !ok {
		r.Logger.Debug("entry selection cancelled", "candidates", len(entries))
		return nil, nil
	}
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("pick entry: index %d out of range [0,%d)", index, len(entries))
	}
	return entries[index], nil
}

// Rows builds one picker row per entry: index, group, name and user.
func Rows(entries []*model.Entry, userField string) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i), e.Group, e.Name, e.Display(userField)}
	}
	return rows
}
