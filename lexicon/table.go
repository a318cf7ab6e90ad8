package lexicon

import (
	"sort"

	"github.com/derekparker/trie"
)

// Entry maps a canonical short form to its spoken long form.
type Entry struct {
	Key   string
	Value string
}

// Table is an immutable, ordered mapping of short forms to long forms.
//
// Declaration order is preserved, as some rules depend on it (math symbols are
// tried in table order). Keys are additionally kept in a prefix trie, which is
// used to derive a longest-match-first ordering for regular expression
// alternations.
type Table struct {
	entries  []Entry
	index    map[string]int
	values   map[string]struct{}
	prefixes *trie.Trie
}

// NewTable creates a table from entries. A key given twice keeps its first
// position and its last value.
func NewTable(entries ...Entry) *Table {
	t := &Table{
		entries:  make([]Entry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
		values:   make(map[string]struct{}, len(entries)),
		prefixes: trie.New(),
	}
	for _, e := range entries {
		assert(e.Key != "", "lexicon table key must not be empty")
		if i, ok := t.index[e.Key]; ok {
			t.entries[i].Value = e.Value
			continue
		}
		t.index[e.Key] = len(t.entries)
		t.entries = append(t.entries, e)
		t.prefixes.Add(e.Key, len(t.entries)-1)
	}
	for _, e := range t.entries {
		t.values[e.Value] = struct{}{}
	}
	return t
}

// pairs is a helper for table declarations: "key", "value", "key", "value", ...
func pairs(kv ...string) []Entry {
	assert(len(kv)%2 == 0, "pairs needs an even number of strings")
	entries := make([]Entry, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		entries = append(entries, Entry{Key: kv[i], Value: kv[i+1]})
	}
	return entries
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the long form for key.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].Value, true
}

// Contains reports whether key is present.
func (t *Table) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// HasValue reports whether any entry expands to value.
func (t *Table) HasValue(value string) bool {
	if t == nil {
		return false
	}
	_, ok := t.values[value]
	return ok
}

// Entries returns a copy of all entries in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Keys returns all keys in declaration order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// With returns a new table holding the entries of t followed by extra.
func (t *Table) With(extra ...Entry) *Table {
	return NewTable(append(t.Entries(), extra...)...)
}

// LongestFirst returns the entries in declaration order, except that every key
// is moved behind all keys it is a proper prefix of.
//
// Example: for keys ">", ">=", "=" the result is ">=", ">", "=".
// An alternation built from this order never lets a short key shadow a longer
// one starting at the same position.
func (t *Table) LongestFirst() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.entries))
	done := make(map[string]bool, len(t.entries))
	var emit func(i int)
	emit = func(i int) {
		e := t.entries[i]
		if done[e.Key] {
			return
		}
		done[e.Key] = true
		for _, j := range t.extensions(e.Key) {
			emit(j)
		}
		out = append(out, e)
	}
	for i := range t.entries {
		emit(i)
	}
	return out
}

// extensions returns the positions of all keys which have key as a proper
// prefix, in declaration order.
func (t *Table) extensions(key string) []int {
	var ext []int
	for _, k := range t.prefixes.PrefixSearch(key) {
		if k == key {
			continue
		}
		if i, ok := t.index[k]; ok {
			ext = append(ext, i)
		}
	}
	sort.Ints(ext)
	return ext
}

// Values returns the distinct long forms in declaration order.
func (t *Table) Values() []string {
	if t == nil {
		return nil
	}
	values := make([]string, 0, len(t.values))
	seen := make(map[string]bool, len(t.values))
	for _, e := range t.entries {
		if !seen[e.Value] {
			seen[e.Value] = true
			values = append(values, e.Value)
		}
	}
	return values
}
