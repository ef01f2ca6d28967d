//go:build go1.18
// +build go1.18

package tokenizer

import "testing"

// FuzzTokenizer feeds random input to both tokenizer modes looking for
// panics or infinite loops; it makes no claim about the resulting event
// stream beyond "terminates and never panics".
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"-",
		"--",
		"-5",
		`"`,
		`""`,
		`"""`,
		`""""`,
		"a b c",
		"\n",
		"\r\n",
		"#comment",
		"#comment\n",
		`"line1"/"line2"`,
		`"He said ""hi"""`,
		"a\nb\nc",
		"a -b \"c\" #d\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tok := NewFromString(input)
		for i := 0; i < 2*len(input)+16; i++ {
			_, ok := tok.Next()
			if !ok {
				return
			}
		}
		t.Fatalf("tokenizer did not terminate within a bounded number of events for input %q", input)
	})
}

// FuzzTokenizerSource mirrors FuzzTokenizer for the owned-iterator input
// path, which takes a different (non-slicing) route through every state.
func FuzzTokenizerSource(f *testing.F) {
	seeds := []string{
		"",
		"-",
		"-5",
		`"oops`,
		`ab"c`,
		`"a"x"`,
		"a b\nc d",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tok := NewFromSource(newSliceSource(input))
		for i := 0; i < 2*len(input)+16; i++ {
			_, ok := tok.Next()
			if !ok {
				return
			}
		}
		t.Fatalf("tokenizer did not terminate within a bounded number of events for input %q", input)
	})
}
