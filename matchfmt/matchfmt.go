package matchfmt

// Used by the package-level functions. Never modified after init.
var std = New(Name("std"))

// The printer behind the package-level functions.
func Default() *Printer {
	return std
}

// Applies the "expected" semantic color of the default printer.
func ExpectedColor(a ...any) string {
	return std.Palette().Expected(a...)
}

// Applies the "received" semantic color of the default printer.
func ReceivedColor(a ...any) string {
	return std.Palette().Received(a...)
}

func Stringify(v any) string {
	return std.Stringify(v)
}

func PrintReceived(v any) string {
	return std.PrintReceived(v)
}

func PrintExpected(v any) string {
	return std.PrintExpected(v)
}

func PrintWithType(label string, v any, print func(any) string) string {
	return std.PrintWithType(label, v, print)
}

func MatcherHint(matcherName string, opts ...HintOpt) string {
	return std.MatcherHint(matcherName, opts...)
}

func EnsureNoExpected(expected any, matcherName string) error {
	return std.EnsureNoExpected(expected, matcherName)
}

func EnsureActualIsNumber(actual any, matcherName string) error {
	return std.EnsureActualIsNumber(actual, matcherName)
}

func EnsureExpectedIsNumber(expected any, matcherName string) error {
	return std.EnsureExpectedIsNumber(expected, matcherName)
}

func EnsureNumbers(actual, expected any, matcherName string) error {
	return std.EnsureNumbers(actual, expected, matcherName)
}
