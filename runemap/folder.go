/*
Package runemap folds accented and foreign letters to their ASCII (or German)
counterparts in a single pass over a text, without building one regular
expression per folding class.

Runes of the Basic Multilingual Plane are mapped to small target IDs by a
two-level table: the high byte of a rune selects a page of 256 slots, the low
byte a slot within the page. Pages are only allocated for high bytes with at
least one folded rune.
*/
package runemap

import (
	"fmt"
	"strings"
)

type page [256]uint16

// Folder replaces runes by target strings.
// A Folder is read-only after construction and safe for concurrent use.
type Folder struct {
	pages    [256]*page
	targets  []string // targets[0] is unused, ID 0 means "not folded"
	byTarget map[string]uint16
}

// NewFolder creates an empty folder.
func NewFolder() *Folder {
	return &Folder{
		targets:  []string{""},
		byTarget: make(map[string]uint16),
	}
}

// Add maps every rune of chars to target. A rune added twice is mapped to the
// later target. Runes outside of the BMP cannot be folded.
func (f *Folder) Add(chars string, target string) error {
	for _, r := range chars {
		if r > 0xFFFF {
			return fmt.Errorf("cannot fold rune %U: outside of BMP", r)
		}
	}
	id, err := f.targetID(target)
	if err != nil {
		return err
	}
	for _, r := range chars {
		p := f.pages[r>>8]
		if p == nil {
			p = new(page)
			f.pages[r>>8] = p
		}
		p[r&0xFF] = id
	}
	return nil
}

func (f *Folder) targetID(target string) (uint16, error) {
	if id, ok := f.byTarget[target]; ok {
		return id, nil
	}
	if len(f.targets) == 0xFFFF {
		return 0, fmt.Errorf("too many fold targets")
	}
	id := uint16(len(f.targets))
	f.targets = append(f.targets, target)
	f.byTarget[target] = id
	return id, nil
}

// folded returns the target ID of r, or 0.
func (f *Folder) folded(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	if p := f.pages[r>>8]; p != nil {
		return p[r&0xFF]
	}
	return 0
}

// Fold returns s with all mapped runes replaced.
func (f *Folder) Fold(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return f.folded(r) != 0 })
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if id := f.folded(r); id != 0 {
			b.WriteString(f.targets[id])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Len returns the number of distinct fold targets.
func (f *Folder) Len() int {
	return len(f.targets) - 1
}

// pageCount returns the number of allocated pages.
func (f *Folder) pageCount() int {
	n := 0
	for _, p := range f.pages {
		if p != nil {
			n++
		}
	}
	return n
}
