// Package matchfmt provides the building blocks matchers use to report failures:
// value stringification, semantic coloring of expected/received values, the
// standard `expect(received).matcher(expected)` hint line, and argument guards
// for matchers that only work with numbers.
//
// # Printers
//
// All package-level functions use a default [Printer] built once at init with
// [DefaultPalette]. If you need different colors (or none), a different depth
// limit, or want the printer to log through your own [slog.Logger], build one
// with [New]:
//
//	p := matchfmt.New(matchfmt.WithPalette(matchfmt.PlainPalette()))
//
//	func toBeGreaterThan(actual, expected any) error {
//		if err := p.EnsureNumbers(actual, expected, ".toBeGreaterThan"); err != nil {
//			return err
//		}
//		...
//	}
//
// A Printer is immutable after [New] returns and safe for concurrent use.
//
// # Value types
//
// The type segment in "Received:\n  number: 3" comes from the [valuetype] package,
// which maps Go values onto a small closed set of semantic types.
package matchfmt
