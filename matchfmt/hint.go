package matchfmt

import "strconv"

// Builds the hint line that opens a failure message:
//
//	expect(received).toBe(expected)
//
// Punctuation is dimmed and the labels take their semantic colors. [matcherName]
// is inserted verbatim, so callers choose how negation shows up (".toBe" vs
// "[.not].toBe").
func (p *Printer) MatcherHint(matcherName string, opts ...HintOpt) string {
	o := hintOpts{received: "received", expected: "expected"}
	for _, f := range opts {
		o = f(o)
	}

	pal := p.Palette()
	return pal.Dim("expect(") +
		pal.Received(o.received) +
		pal.Dim(")"+matcherName+"(") +
		pal.Expected(o.expected) +
		pal.Dim(")")
}

var spelledNumbers = [...]string{
	"zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve", "thirteen",
}

// "one apple", "two apples", "20 apples". Counts from zero to thirteen are
// spelled out, anything else uses the numeral.
func Pluralize(word string, count int) string {
	n := strconv.Itoa(count)
	if count >= 0 && count < len(spelledNumbers) {
		n = spelledNumbers[count]
	}

	if count == 1 {
		return n + " " + word
	}
	return n + " " + word + "s"
}
