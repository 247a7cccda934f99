package match

import (
	"testing"

	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/stretchr/testify/assert"
)

func descriptors() map[string]*model.Descriptor {
	return map[string]*model.Descriptor{
		"/s/web/github.gpg": {Path: "/s/web/github.gpg", Patterns: []string{"GitHub"}},
		"/s/mail.gpg":       {Path: "/s/mail.gpg", Patterns: []string{"Inbox", "Mail"}},
		"/s/bank.gpg":       {Path: "/s/bank.gpg", Patterns: []string{"Online Banking"}},
		"/s/empty.gpg":      {Path: "/s/empty.gpg"},
	}
}

func paths(descs []*model.Descriptor) []string {
	var out []string
	for _, d := range descs {
		out = append(out, d.Path)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"Sign in to GitHub - Firefox", []string{"/s/web/github.gpg"}},
		{"Inbox - Mail", []string{"/s/mail.gpg"}},
		{"GitHub Mail settings", []string{"/s/mail.gpg", "/s/web/github.gpg"}},
		{"github", nil},
		{"", nil},
		{"Terminal", nil},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Filter(descriptors(), tt.title)
			assert.Equal(t, tt.want, paths(got))
		})
	}
}

func TestFilter_SetsMatchedFlag(t *testing.T) {
	descs := descriptors()
	Filter(descs, "Online Banking")
	assert.True(t, descs["/s/bank.gpg"].Matched)
	assert.False(t, descs["/s/mail.gpg"].Matched)

	// A later pass with another title resets the flag.
	Filter(descs, "Inbox")
	assert.False(t, descs["/s/bank.gpg"].Matched)
	assert.True(t, descs["/s/mail.gpg"].Matched)
}

func TestFilter_EmptyPatternsNeverMatch(t *testing.T) {
	for _, title := range []string{"", " ", "anything at all"} {
		for _, d := range Filter(descriptors(), title) {
			assert.NotEqual(t, "/s/empty.gpg", d.Path)
		}
	}
}

func TestMatches_Independent(t *testing.T) {
	descs := descriptors()
	title := "GitHub Mail"
	matched := Filter(descs, title)
	for path, d := range descs {
		assert.Equal(t, Matches(d, title) && len(d.Patterns) > 0, contains(paths(matched), path), path)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
