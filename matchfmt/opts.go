package matchfmt

import "log/slog"

const DefaultMaxDepth = 10

type printerOpts struct {
	palette  Palette
	logger   *slog.Logger
	maxDepth int
	name     string
}

type PrinterOpt func(o printerOpts) printerOpts

// Set the colors used for expected, received and dimmed text. See [DefaultPalette],
// [PlainPalette] and [AutoPalette].
func WithPalette(p Palette) PrinterOpt {
	return func(o printerOpts) printerOpts {
		o.palette = p
		return o
	}
}

// Set the logger. Defaults to [slog.Default] at the time of logging.
func Logger(logger *slog.Logger) PrinterOpt {
	return func(o printerOpts) printerOpts {
		o.logger = logger
		return o
	}
}

// How deep [Printer.Stringify] descends into nested values. Values <= 0 fall
// back to [DefaultMaxDepth]
func MaxDepth(depth int) PrinterOpt {
	return func(o printerOpts) printerOpts {
		o.maxDepth = depth
		return o
	}
}

// Set a name for the printer, that will be used in log messages
func Name(name string) PrinterOpt {
	return func(o printerOpts) printerOpts {
		o.name = name
		return o
	}
}

type hintOpts struct {
	received string
	expected string
}

type HintOpt func(o hintOpts) hintOpts

// Label shown in the received slot of [Printer.MatcherHint]. Defaults to "received"
func ReceivedLabel(label string) HintOpt {
	return func(o hintOpts) hintOpts {
		o.received = label
		return o
	}
}

// Label shown in the expected slot of [Printer.MatcherHint]. Defaults to "expected".
// Pass "" for matchers that take no arguments.
func ExpectedLabel(label string) HintOpt {
	return func(o hintOpts) hintOpts {
		o.expected = label
		return o
	}
}
