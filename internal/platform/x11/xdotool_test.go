package x11

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// fakeXdotool writes a script that logs its arguments, one per line, to a
// file, saves the stdin of "type" next to it and answers the window queries.
func fakeXdotool(t *testing.T, exitCode int) (*Xdotool, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls")
	script := `#!/bin/sh
for a in "$@"; do echo "$a" >> "` + logPath + `"; done
echo "@@end@@" >> "` + logPath + `"
case "$1" in
type) cat > "` + logPath + `.stdin" ;;
getactivewindow) echo 4194311 ;;
getwindowname) echo "Sign in to GitHub - Mozilla Firefox" ;;
esac
if [ ` + "\"$1\"" + ` = key ] && [ ` + strconv.Itoa(exitCode) + ` -ne 0 ]; then
	echo "Error: Can't open display" >&2
	exit ` + strconv.Itoa(exitCode) + `
fi
`
	path := filepath.Join(dir, "xdotool")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return &Xdotool{Command: path}, logPath
}

func readCalls(t *testing.T, logPath string) [][]string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	var calls [][]string
	var cur []string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line == "@@end@@" {
			calls = append(calls, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	return calls
}

func TestXdotool_TypeText(t *testing.T) {
	x, logPath := fakeXdotool(t, 0)
	if err := x.TypeText("p@ss word", 20); err != nil {
		t.Fatal(err)
	}
	calls := readCalls(t, logPath)
	want := []string{"type", "--clearmodifiers", "--delay", "20", "--file", "-"}
	if len(calls) != 1 || strings.Join(calls[0], "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", calls, want)
	}
	typed, err := os.ReadFile(logPath + ".stdin")
	if err != nil {
		t.Fatal(err)
	}
	if string(typed) != "p@ss word" {
		t.Errorf("stdin = %q, want %q", typed, "p@ss word")
	}
}

func TestXdotool_KeyCombo(t *testing.T) {
	x, logPath := fakeXdotool(t, 0)
	if err := x.KeyCombo([]string{"ctrl", "l"}); err != nil {
		t.Fatal(err)
	}
	if err := x.KeyCombo([]string{"BackSpace"}); err != nil {
		t.Fatal(err)
	}
	calls := readCalls(t, logPath)
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if got := calls[0][len(calls[0])-1]; got != "ctrl+l" {
		t.Errorf("first key = %q, want ctrl+l", got)
	}
	if got := calls[1][len(calls[1])-1]; got != "BackSpace" {
		t.Errorf("second key = %q, want BackSpace", got)
	}
}

func TestXdotool_KeyComboEmpty(t *testing.T) {
	x := New()
	if err := x.KeyCombo(nil); err == nil {
		t.Error("expected error for empty key list")
	}
}

func TestXdotool_KeyComboFailure(t *testing.T) {
	x, _ := fakeXdotool(t, 1)
	err := x.KeyCombo([]string{"Tab"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Can't open display") {
		t.Errorf("error should carry stderr, got: %v", err)
	}
}

func TestXdotool_ActiveWindow(t *testing.T) {
	x, _ := fakeXdotool(t, 0)
	w, err := x.ActiveWindow()
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 4194311 {
		t.Errorf("ID = %d, want 4194311", w.ID)
	}
	if w.Title != "Sign in to GitHub - Mozilla Firefox" {
		t.Errorf("Title = %q", w.Title)
	}
}

func TestXdotool_MissingBinary(t *testing.T) {
	x := &Xdotool{Command: filepath.Join(t.TempDir(), "no-xdotool")}
	if _, err := x.ActiveWindow(); err == nil {
		t.Error("expected error when xdotool is missing")
	}
}
