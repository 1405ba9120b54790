package app

import "strings"

// Shortcut keys understood by HandleKey.
const (
	KeyGenerate = "space"
	KeySave     = "s"
	KeyCopy     = "c"
)

// HandleKey maps a keyboard shortcut to an operation and reports whether it was consumed.
// Shortcuts are ignored while focus is in an editable field.
func (a *App) HandleKey(k string, editable bool) bool {
	if editable {
		return false
	}

	switch strings.ToLower(k) {
	case KeyGenerate, " ":
		a.Shuffle()
	case KeySave:
		a.SaveFavorite()
	case KeyCopy:
		a.CopyStylesheet()
	default:
		return false
	}
	return true
}
