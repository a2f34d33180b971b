package classify

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	sheenbidi "github.com/utelle/SheenBidi"
)

func TestRuneClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	cases := []struct {
		r    rune
		want sheenbidi.Class
	}{
		{'A', sheenbidi.L},
		{'א', sheenbidi.R},  // Hebrew alef
		{'ا', sheenbidi.AL}, // Arabic alef
		{'7', sheenbidi.EN},
		{'٣', sheenbidi.AN}, // Arabic-Indic three
		{'+', sheenbidi.ES},
		{'$', sheenbidi.ET},
		{',', sheenbidi.CS},
		{'\n', sheenbidi.B},
		{'\t', sheenbidi.S},
		{' ', sheenbidi.WS},
		{'!', sheenbidi.ON},
		{'\u200C', sheenbidi.BN}, // zero width non-joiner
		{'\u202A', sheenbidi.LRE},
		{'\u202B', sheenbidi.RLE},
		{'\u202C', sheenbidi.PDF},
		{'\u202D', sheenbidi.LRO},
		{'\u202E', sheenbidi.RLO},
		{'\u2066', sheenbidi.LRI},
		{'\u2067', sheenbidi.RLI},
		{'\u2068', sheenbidi.FSI},
		{'\u2069', sheenbidi.PDI},
		{'\u200F', sheenbidi.R}, // right-to-left mark
	}
	for _, c := range cases {
		if got := Rune(c.r); got != c.want {
			t.Errorf("class of %U: got %s, want %s", c.r, got, c.want)
		}
	}
}

func TestClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	classes := Classes("aא1")
	want := []sheenbidi.Class{sheenbidi.L, sheenbidi.R, sheenbidi.EN}
	if len(classes) != len(want) {
		t.Fatalf("expected %d classes, got %d", len(want), len(classes))
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, classes[i], want[i])
		}
	}
}

func TestSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	runes := []rune("ab\r\ncd\ne")
	sep := Separators(runes)
	if got := sep(2); got != 2 {
		t.Errorf("CR+LF must count as one separator of length 2, got %d", got)
	}
	if got := sep(3); got != 1 {
		t.Errorf("the LF of a CR+LF pair, asked on its own, has length 1, got %d", got)
	}
	if got := sep(6); got != 1 {
		t.Errorf("a lone LF is a separator of length 1, got %d", got)
	}
}

func TestClassifiedParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	// Classifier and algorithm plugged together: CR+LF ends the first
	// paragraph after four positions.
	runes, classes := Text("ab\r\ncd")
	algo := sheenbidi.New(classes, sheenbidi.WithSeparatorLengths(Separators(runes)))
	para, err := algo.Paragraph(0, len(classes), sheenbidi.LevelDefaultLTR)
	if err != nil {
		t.Fatal(err)
	}
	if para.Length() != 4 {
		t.Errorf("expected paragraph length 4 (text plus CR+LF), got %d", para.Length())
	}
	if para.BaseLevel() != 0 {
		t.Errorf("expected base level 0, got %d", para.BaseLevel())
	}
}
