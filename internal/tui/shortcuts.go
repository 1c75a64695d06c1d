package tui

import "fmt"

// shortcutRune maps a menu index to its jump key: 0-9 stay digits, then
// letters starting at 'a'. 'q' is reserved for "save and quit" and skipped;
// indices past 'y' get no shortcut.
func shortcutRune(index int) (rune, bool) {
	if index < 0 {
		return 0, false
	}
	if index < 10 {
		return rune('0' + index), true
	}
	c := rune(index - 10 + 'a')
	if c >= 'q' {
		c++
	}
	if c < 'z' {
		return c, true
	}
	return 0, false
}

// shortcutLabel renders the "[x] " prefix for a menu row, empty when the
// index has no shortcut.
func shortcutLabel(index int) string {
	c, ok := shortcutRune(index)
	if !ok {
		return ""
	}
	return fmt.Sprintf("[%c] ", c)
}

// indexForShortcut is the inverse of shortcutRune.
func indexForShortcut(c rune) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if c >= 'a' && c < 'q' {
		return int(c-'a') + 10, true
	}
	if c > 'q' && c < 'z' {
		return int(c-'a') + 9, true
	}
	return 0, false
}
