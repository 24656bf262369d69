package terminal

import "unicode"

// Key represents a parsed input key.
//
// Values up to 0x10FFFF are the rune the terminal delivered, so printable
// characters and control bytes (Ctrl+A = 0x01 .. Ctrl+Z = 0x1A) compare
// directly. Special keys sit above the Unicode range and can never collide
// with typed input.
type Key int

// Control keys
const (
	KeyNone  Key = 0
	KeyCtrlC Key = 3
	KeyCtrlD Key = 4
	KeyCtrlF Key = 6
	KeyCtrlH Key = 8
	KeyTab   Key = 9
	KeyEnter Key = 10
	KeyCtrlS Key = 19
	KeyCtrlZ Key = 26
	KeyEsc   Key = 27
	KeySpace Key = 32
	KeyDel   Key = 127
)

// Special keys, outside the rune range
const (
	KeyUp Key = 0x110000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyBacktab
)

// Rune returns the printable rune for the key, or 0 when the key does not
// represent printable input.
func (k Key) Rune() rune {
	if k < KeySpace || k == KeyDel || k > 0x10FFFF {
		return 0
	}
	if !unicode.IsPrint(rune(k)) {
		return 0
	}
	return rune(k)
}

// Printable reports whether the key carries a printable rune.
func (k Key) Printable() bool {
	return k.Rune() != 0
}
