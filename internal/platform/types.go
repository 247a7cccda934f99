package platform

import "strings"

// Key names used by the autotype flow. They follow X11 keysym spelling;
// backends translate them as needed.
const (
	KeyBackSpace = "BackSpace"
	KeyReturn    = "Return"
	KeyTab       = "Tab"
)

// ParseKeyCombo splits a combination like "ctrl+shift+t" into key names.
// A bare "+" is the plus key itself; an empty string has no keys.
func ParseKeyCombo(s string) []string {
	if s == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(s, "+") {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return []string{s}
	}
	return keys
}

// keyAliases maps lowercased X11 keysym spellings to the generic key names
// used by non-X11 backends.
var keyAliases = map[string]string{
	"kp_enter":     "enter",
	"iso_left_tab": "tab",
	"prior":        "pageup",
	"next":         "pagedown",
	"page_up":      "pageup",
	"page_down":    "pagedown",
	"control":      "ctrl",
	"control_l":    "ctrl",
	"control_r":    "ctrl",
	"super":        "cmd",
	"super_l":      "cmd",
	"super_r":      "cmd",
	"meta":         "cmd",
	"alt_l":        "alt",
	"alt_r":        "alt",
	"shift_l":      "shift",
	"shift_r":      "shift",
}

// NormalizeKey lowercases an X11 keysym name and maps it to the generic name
// understood by non-X11 backends ("BackSpace" -> "backspace",
// "Prior" -> "pageup").
func NormalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
