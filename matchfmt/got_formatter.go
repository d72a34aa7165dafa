package matchfmt

import (
	"go.uber.org/mock/gomock"

	"github.com/uberbrodt/matchfmt/matchfmt/valuetype"
)

// A [gomock.GotFormatter] that renders the received argument the way the rest
// of a failure message does: "<printed> (<type>)".
func (p *Printer) GotFormatter() gomock.GotFormatter {
	return gomock.GotFormatterFunc(func(got any) string {
		return p.PrintReceived(got) + " (" + valuetype.Of(got).String() + ")"
	})
}

// Wraps [m] so gomock reports mismatches using [Printer.GotFormatter].
func (p *Printer) WrapMatcher(m gomock.Matcher) gomock.Matcher {
	return gomock.GotFormatterAdapter(p.GotFormatter(), m)
}
