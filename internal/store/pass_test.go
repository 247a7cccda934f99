package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePass writes an executable shell script standing in for pass(1).
func fakePass(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "pass")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestPassCommand_Decrypt(t *testing.T) {
	cmd := fakePass(t, `[ "$1" = show ] || exit 2
[ "$2" = web/mail ] || exit 3
printf 'secret  \n\n  user: bob\nnotes: x:y\n'
`)
	p := NewPassCommand(cmd, "", discardLogger())

	lines, err := p.Decrypt(context.Background(), "web/mail")
	require.NoError(t, err)
	assert.Equal(t, []string{"secret", "user: bob", "notes: x:y"}, lines)
}

func TestPassCommand_ExportsStoreDir(t *testing.T) {
	cmd := fakePass(t, `echo "$PASSWORD_STORE_DIR"`)
	p := NewPassCommand(cmd, "/tmp/my-store", discardLogger())

	lines, err := p.Decrypt(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/my-store"}, lines)
}

func TestPassCommand_NonZeroExitIsNoPassword(t *testing.T) {
	cmd := fakePass(t, "echo 'Error: x is not in the password store.' >&2\nexit 1\n")
	var logs bytes.Buffer
	p := NewPassCommand(cmd, "", log.New(&logs))

	lines, err := p.Decrypt(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Contains(t, logs.String(), "is not in the password store")
}

func TestPassCommand_MissingBinary(t *testing.T) {
	p := NewPassCommand(filepath.Join(t.TempDir(), "no-such-pass"), "", discardLogger())
	_, err := p.Decrypt(context.Background(), "x")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestNewPassCommand_Default(t *testing.T) {
	p := NewPassCommand("", "", discardLogger())
	assert.Equal(t, "pass", p.Command)
}
