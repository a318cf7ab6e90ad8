package transliterate

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/transliterate/lexicon"
	"github.com/npillmayer/transliterate/numerals"
)

func newTransliterator(t *testing.T, opts ...Option) *Transliterator {
	t.Helper()
	tr, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestDefaultPipeline(t *testing.T) {
	tr := newTransliterator(t)
	tests := []struct {
		in, want string
	}{
		{"Am 3.5.2020 kostete der ADAC-Kurs 3,50€.",
			"am dritten mai zweitausendzwanzig kostete der ah deh ah zee kurs drei euro fünfzig."},
		{"3.5.2020", "dritte mai zweitausendzwanzig"},
		{"3,50€", "drei euro fünfzig"},
		{"3,00€", "drei euro"},
		{"3,5 €", "drei euro fünfzig"},
		{"5 EUR", "fünf euro"},
		{"5 TEURO", "fünf tausend euro"},
		{"1:05 uhr", "ein uhr fünf"},
		{"14.30 Uhr", "vierzehn uhr dreißig"},
		{"2:30", "zwei stunden dreißig minuten"},
		{"1:01", "eine stunde eine minute"},
		{"1 h", "eine stunde"},
		{"1 kg", "ein kilogramm"},
		{"20t", "zwanzig tonnen"},
		{"1t", "eine tonne"},
		{"ADAC", "ah deh ah zee"},
		{"DAX", "dax"},
		{"Urlaub in GB", "urlaub in geh beh"},
		{"10 GB frei", "zehn gigabyte frei"},
		{"Termin in KW 12", "termin in kah weh zwölf"},
		{"der MW liegt hoch", "der emm weh liegt hoch"},
		{"U.S.A.", "uh ess ah"},
		{"im 2. Stock", "im zweiten stock"},
		{"z.B.", "zum beispiel"},
		{"(hallo)", "in klammern hallo"},
		{`"sehr gut"`, "in anführungszeichen sehr gut"},
		{"10-12", "zehn bis zwölf"},
		{"1/2", "ein halb"},
		{"½", "ein halb"},
		{"3/4", "drei von vier"},
		{"café", "cafe"},
		{"café", "cafe"},
		{"  viel   Platz\t hier ", "viel platz hier"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := tr.Transliterate(tt.in)
		if err != nil {
			t.Fatalf("Transliterate(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeparator(t *testing.T) {
	tr := newTransliterator(t, WithSeparator("-"))
	if got, _ := tr.Transliterate("ADAC"); got != "ah-deh-ah-zee" {
		t.Errorf("expected acronym letters joined by '-', got %q", got)
	}
}

func TestAcronymMaskingWithoutPhonemes(t *testing.T) {
	tr := newTransliterator(t, WithOps())
	if got, _ := tr.Transliterate("ADAC"); got != "a d a c" {
		t.Errorf("expected separated letters, got %q", got)
	}
}

func TestKeepCase(t *testing.T) {
	tr := newTransliterator(t, WithOps(), WithLowercase(false))
	if got, _ := tr.Transliterate("Hallo Welt"); got != "Hallo Welt" {
		t.Errorf("expected case to be kept, got %q", got)
	}
}

func TestMathSymbols(t *testing.T) {
	tr := newTransliterator(t, WithOps(MathSymbol), WithReplacements())
	tests := []struct {
		in, want string
	}{
		{"3x4", "drei mal vier"},
		{"xylophon", "xylophon"},
		{"a-b", "a minus b"},
		{"ab-cd", "ab-cd"},
		{"a>=b", "a größer gleich b"},
	}
	for _, tt := range tests {
		if got, _ := tr.Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWeekdaysAndMonths(t *testing.T) {
	tr := newTransliterator(t, WithOps(Weekday, Month))
	tests := []struct {
		in, want string
	}{
		{"mo.", "montag"},
		{"fr.", "freitag"},
		{"so.", "sonntag"},
		{"jan.", "januar"},
		{"dez", "dezember"},
	}
	for _, tt := range tests {
		if got, _ := tr.Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrdinalGuard(t *testing.T) {
	tr := newTransliterator(t, WithOps(Ordinal))
	tests := []struct {
		in, want string
	}{
		{"der 3. platz", "der dritte platz"},
		{"platz 3.", "platz drei."},
		{"der 3. euro", "der drei. euro"},
	}
	for _, tt := range tests {
		if got, _ := tr.Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	broken := lexicon.Default().WithUnits(lexicon.SuffixN, lexicon.Entry{Key: "kg", Value: "kilogrammen"})
	tests := []struct {
		name string
		opts []Option
	}{
		{"unknown rule", []Option{WithOps("bogus")}},
		{"duplicate rule", []Option{WithOps(Date, Date)}},
		{"empty replacement", []Option{WithReplacements(Replacement{From: "", To: "x"})}},
		{"marker in separator", []Option{WithSeparator(markerString)}},
		{"no lexicon", []Option{WithLexicon(nil)}},
		{"unit partition", []Option{WithLexicon(broken)}},
	}
	for _, tt := range tests {
		_, err := New(tt.opts...)
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%s: expected configuration error, got %v", tt.name, err)
		}
	}
	_, err := New(WithLexicon(broken))
	if !errors.Is(err, lexicon.ErrPartition) {
		t.Errorf("expected partition error to be wrapped, got %v", err)
	}
}

type panickingFormatter struct{}

func (panickingFormatter) Format(string, numerals.Mode) string {
	panic("formatter out of order")
}

func TestPanicIsReportedAsPassError(t *testing.T) {
	tr := newTransliterator(t, WithOps(), WithNumberFormatter(panickingFormatter{}))
	out, err := tr.Transliterate("es sind 3")
	if out != "" {
		t.Errorf("expected no partial output, got %q", out)
	}
	var perr *PassError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PassError, got %v", err)
	}
	if perr.Pass != "number_unit" {
		t.Errorf("expected failing pass number_unit, got %s", perr.Pass)
	}
	if !errors.Is(err, ErrInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
}

var corpus = []string{
	"Am 3.5.2020 kostete der ADAC-Kurs 3,50€.",
	"Der DAX fiel um 1,5% auf 12.345,67 Punkte (Stand: 14:30 Uhr).",
	"Vom 1. bis 3. Juni sind 1 t, 20kg und 5 m³ zu liefern.",
	"\"Zitat\" und 'noch eins' & (Klammern [eckig]) ⅓ 1/3 +/-5",
	"ab  -- - x 3x4 ADAC ADAC U.S.A.",
	"((( ))) \"\"\" 1.000.000 € 5 Mio. $ 1,234€ 7,5 kg",
	"   \t\n  ",
}

func TestOutputProperties(t *testing.T) {
	tr := newTransliterator(t, WithOps(allOps...))
	for _, in := range corpus {
		out, err := tr.Transliterate(in)
		if err != nil {
			t.Fatalf("Transliterate(%q) failed: %v", in, err)
		}
		if strings.ContainsRune(out, marker) {
			t.Errorf("output for %q contains marker: %q", in, out)
		}
		if strings.Contains(out, "  ") {
			t.Errorf("output for %q contains double spaces: %q", in, out)
		}
		again, err := tr.Transliterate(out)
		if err != nil {
			t.Errorf("re-running on %q failed: %v", out, err)
		}
		if strings.ContainsRune(again, marker) {
			t.Errorf("re-running on %q introduced markers", out)
		}
		if same, _ := tr.Transliterate(in); same != out {
			t.Errorf("output for %q is not deterministic: %q vs %q", in, out, same)
		}
	}
}

func TestLongNumeralIsKept(t *testing.T) {
	tr := newTransliterator(t)
	digits := strings.Repeat("1", 5000)
	for _, in := range []string{
		"preis " + digits + " stück",
		"preis " + digits + ",50 stück",
	} {
		got, err := tr.Transliterate(in)
		if err != nil {
			t.Fatalf("long numeral failed: %v", err)
		}
		if got != strings.ToLower(in) {
			t.Errorf("expected long numeral to be kept, got %d bytes", len(got))
		}
	}
	got, err := tr.currencies("für " + digits + " €")
	if err != nil {
		t.Fatal(err)
	}
	if got != "für "+digits+" euro" {
		t.Errorf("expected long amount to be rewritten, got %d bytes", len(got))
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := newTransliterator(t)
	want := make([]string, len(corpus))
	for i, in := range corpus {
		want[i], _ = tr.Transliterate(in)
	}
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range corpus {
				if got, err := tr.Transliterate(in); err != nil || got != want[i] {
					t.Errorf("concurrent Transliterate(%q) = %q, %v, want %q", in, got, err, want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func TestConfigIsCopied(t *testing.T) {
	ops := []Op{Date, Ordinal}
	tr := newTransliterator(t, WithOps(ops...))
	ops[0] = Month
	c := tr.Config()
	if c.Ops[0] != Date {
		t.Fatalf("configuration shares the caller's slice")
	}
	c.Ops[1] = Weekday
	if tr.Config().Ops[1] != Ordinal {
		t.Fatalf("Config exposes internal state")
	}
}
