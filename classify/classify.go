package classify

import (
	"golang.org/x/text/unicode/bidi"

	sheenbidi "github.com/utelle/SheenBidi"
)

// controls maps the explicit directional formatting code points to their
// classes. The x/text tables report all of them as bidi.Control.
var controls = map[rune]sheenbidi.Class{
	'\u202A': sheenbidi.LRE,
	'\u202B': sheenbidi.RLE,
	'\u202C': sheenbidi.PDF,
	'\u202D': sheenbidi.LRO,
	'\u202E': sheenbidi.RLO,
	'\u2066': sheenbidi.LRI,
	'\u2067': sheenbidi.RLI,
	'\u2068': sheenbidi.FSI,
	'\u2069': sheenbidi.PDI,
}

// Rune determines the bidi class of a single code point.
func Rune(r rune) sheenbidi.Class {
	if c, ok := controls[r]; ok {
		return c
	}
	props, _ := bidi.LookupRune(r)
	return mapClass(props.Class())
}

func mapClass(c bidi.Class) sheenbidi.Class {
	switch c {
	case bidi.L:
		return sheenbidi.L
	case bidi.R:
		return sheenbidi.R
	case bidi.AL:
		return sheenbidi.AL
	case bidi.EN:
		return sheenbidi.EN
	case bidi.ES:
		return sheenbidi.ES
	case bidi.ET:
		return sheenbidi.ET
	case bidi.AN:
		return sheenbidi.AN
	case bidi.CS:
		return sheenbidi.CS
	case bidi.B:
		return sheenbidi.B
	case bidi.S:
		return sheenbidi.S
	case bidi.WS:
		return sheenbidi.WS
	case bidi.ON:
		return sheenbidi.ON
	case bidi.BN, bidi.Control:
		return sheenbidi.BN
	case bidi.NSM:
		return sheenbidi.NSM
	case bidi.LRO:
		return sheenbidi.LRO
	case bidi.RLO:
		return sheenbidi.RLO
	case bidi.LRE:
		return sheenbidi.LRE
	case bidi.RLE:
		return sheenbidi.RLE
	case bidi.PDF:
		return sheenbidi.PDF
	case bidi.LRI:
		return sheenbidi.LRI
	case bidi.RLI:
		return sheenbidi.RLI
	case bidi.FSI:
		return sheenbidi.FSI
	case bidi.PDI:
		return sheenbidi.PDI
	}
	return sheenbidi.ON
}

// Classes determines the bidi class of every rune of s.
func Classes(s string) []sheenbidi.Class {
	return ClassesOfRunes([]rune(s))
}

// ClassesOfRunes determines the bidi class of every rune of the slice.
func ClassesOfRunes(runes []rune) []sheenbidi.Class {
	classes := make([]sheenbidi.Class, len(runes))
	for i, r := range runes {
		classes[i] = Rune(r)
	}
	return classes
}

// Separators returns a separator-length oracle over the given runes, to be
// handed to sheenbidi.WithSeparatorLengths: a CR immediately followed by LF
// is one paragraph separator of length 2, every other separator counts a
// single position.
func Separators(runes []rune) func(index int) int {
	return func(index int) int {
		if index >= 0 && index+1 < len(runes) && runes[index] == '\r' && runes[index+1] == '\n' {
			return 2
		}
		return 1
	}
}

// Text classifies s and returns the rune slice alongside the classes, both
// indexed by rune position.
func Text(s string) ([]rune, []sheenbidi.Class) {
	runes := []rune(s)
	tracer().Debugf("classifying %d runes", len(runes))
	return runes, ClassesOfRunes(runes)
}
