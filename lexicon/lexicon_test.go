package lexicon

import (
	"errors"
	"reflect"
	"testing"
)

func TestTableLookupKeepsFirstPosition(t *testing.T) {
	tab := NewTable(pairs("a", "1", "b", "2", "a", "3")...)
	if tab.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tab.Len())
	}
	if v, ok := tab.Lookup("a"); !ok || v != "3" {
		t.Fatalf("expected a => 3, got %q (%v)", v, ok)
	}
	if keys := tab.Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Fatalf("unexpected key order %v", keys)
	}
	if !tab.HasValue("2") || tab.HasValue("1") {
		t.Fatalf("value index out of sync")
	}
}

func TestTableLongestFirst(t *testing.T) {
	tests := []struct {
		keys []string
		want []string
	}{
		{keys: []string{">", ">=", "="}, want: []string{">=", ">", "="}},
		{keys: []string{"t_e_u_r", "t_e_u_r_o", "€"}, want: []string{"t_e_u_r_o", "t_e_u_r", "€"}},
		{keys: []string{"jun", "jul", "juni", "juli"}, want: []string{"juni", "jun", "juli", "jul"}},
		{keys: []string{"m", "mm", "mm^2", "km"}, want: []string{"mm^2", "mm", "m", "km"}},
	}
	for _, tt := range tests {
		entries := make([]Entry, len(tt.keys))
		for i, k := range tt.keys {
			entries[i] = Entry{Key: k, Value: k}
		}
		got := NewTable(entries...).LongestFirst()
		keys := make([]string, len(got))
		for i, e := range got {
			keys[i] = e.Key
		}
		if !reflect.DeepEqual(keys, tt.want) {
			t.Errorf("LongestFirst(%v) = %v, want %v", tt.keys, keys, tt.want)
		}
	}
}

func TestTableWithDoesNotModifyReceiver(t *testing.T) {
	base := NewTable(pairs("bzw", "beziehungsweise")...)
	ext := base.With(Entry{Key: "usw", Value: "und so weiter"})
	if base.Contains("usw") {
		t.Fatalf("base table has been modified")
	}
	if !ext.Contains("bzw") || !ext.Contains("usw") {
		t.Fatalf("extended table is missing entries: %v", ext.Keys())
	}
}

func TestDefaultLexiconIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestUnitPluralClasses(t *testing.T) {
	lex := Default()
	tests := []struct {
		key      string
		class    PluralClass
		plural   string
		singular string
	}{
		{"kg", Invariant, "kilogramm", "kilogramm"},
		{"m", Invariant, "meter", "meter"},
		{"t", SuffixN, "tonnen", "tonne"},
		{"h", SuffixN, "stunden", "stunde"},
		{"mio", SuffixEn, "millionen", "million"},
	}
	for _, tt := range tests {
		u, ok := lex.Unit(tt.key)
		if !ok {
			t.Fatalf("unit %q not found", tt.key)
		}
		if u.Class != tt.class || u.Plural != tt.plural || u.Singular() != tt.singular {
			t.Errorf("unit %q = %+v (singular %q), want %s %q %q",
				tt.key, u, u.Singular(), tt.class, tt.plural, tt.singular)
		}
	}
	if _, ok := lex.Unit("stunden"); ok {
		t.Errorf("spoken forms must not be unit keys")
	}
}

func TestValidateRejectsOverlappingClasses(t *testing.T) {
	lex := Default().WithUnits(SuffixN, Entry{Key: "kg", Value: "kilogrammen"})
	err := lex.Validate()
	if !errors.Is(err, ErrPartition) {
		t.Fatalf("expected partition error, got %v", err)
	}
	if Default().Validate() != nil {
		t.Fatalf("WithUnits modified the default lexicon")
	}
}

func TestValidateRejectsMissingSuffix(t *testing.T) {
	lex := Default().WithUnits(SuffixEn, Entry{Key: "tsd", Value: "tausend"})
	if err := lex.Validate(); err == nil {
		t.Fatalf("expected suffix error for SuffixEn unit without 'en'")
	}
}

func TestExtensionCopies(t *testing.T) {
	lex := Default()
	ext := lex.WithAbbreviations(Entry{Key: "bzgl", Value: "bezüglich"}).WithAcronymExclusions("NATO")
	if lex.Misc.Contains("bzgl") || lex.IsExcludedAcronym("NATO") {
		t.Fatalf("default lexicon has been modified")
	}
	if v, _ := ext.Misc.Lookup("bzgl"); v != "bezüglich" {
		t.Fatalf("expected bzgl => bezüglich, got %q", v)
	}
	if !ext.IsExcludedAcronym("NATO") || !ext.IsExcludedAcronym("DAX") {
		t.Fatalf("exclusions not extended")
	}
}

func TestTableValues(t *testing.T) {
	tab := NewTable(pairs("mrd", "milliarden", "mia", "milliarden", "mio", "millionen")...)
	if vals := tab.Values(); !reflect.DeepEqual(vals, []string{"milliarden", "millionen"}) {
		t.Fatalf("expected distinct values in declaration order, got %v", vals)
	}
	var empty *Table
	if empty.Values() != nil {
		t.Fatalf("nil table should have no values")
	}
}
