package matchfmt

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/uberbrodt/matchfmt/matchfmt/valuetype"
)

// spew writes this inline when a String or Error method panics
const hookPanicMarker = "(PANIC="

var errHookPanicked = errors.New("String/Error method panicked")

// Renders values for failure messages. Build with [New]. The zero value is
// usable: it prints without colors, logs to [slog.Default] and uses
// [DefaultMaxDepth].
type Printer struct {
	palette  Palette
	logger   *slog.Logger
	name     string
	maxDepth int
	// first attempt: String and Error methods are honored
	withMethods *spew.ConfigState
	// fallback attempt: methods are ignored and the raw value is printed
	noMethods *spew.ConfigState
}

func New(opts ...PrinterOpt) *Printer {
	o := printerOpts{
		palette:  DefaultPalette(),
		maxDepth: DefaultMaxDepth,
		name:     "default",
	}
	for _, f := range opts {
		o = f(o)
	}
	if o.maxDepth <= 0 {
		o.maxDepth = DefaultMaxDepth
	}

	return &Printer{
		palette:     o.palette.complete(),
		logger:      o.logger,
		name:        o.name,
		maxDepth:    o.maxDepth,
		withMethods: spewConfig(o.maxDepth, false),
		noMethods:   spewConfig(o.maxDepth, true),
	}
}

// Pointer methods stay off so a pointer that implements error or Stringer is
// printed through its method rather than as "<*>" followed by its fields.
func spewConfig(maxDepth int, disableMethods bool) *spew.ConfigState {
	return &spew.ConfigState{
		MaxDepth:              maxDepth,
		DisableMethods:        disableMethods,
		DisablePointerMethods: true,
		DisableCapacities:     true,
		SortKeys:              true,
	}
}

func (p *Printer) Palette() Palette {
	return p.palette.complete()
}

func (p *Printer) depth() int {
	if p.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.maxDepth
}

// the spew configs for the first and fallback attempts. Zero-value printers
// get fresh ones.
func (p *Printer) configs() (withMethods, noMethods *spew.ConfigState) {
	if p.withMethods != nil && p.noMethods != nil {
		return p.withMethods, p.noMethods
	}
	return spewConfig(p.depth(), false), spewConfig(p.depth(), true)
}

func (p *Printer) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	name := p.name
	if name == "" {
		name = "default"
	}
	return slog.Default().With("matchfmt.printer", name)
}

// Renders [v] on a single line, descending at most [MaxDepth] levels. Strings
// are quoted at every level.
//
// String and Error methods on [v] (or anything inside it) are used when
// available. If one of them panics, [v] is printed again with methods disabled
// so a broken String method can't take the failure message down with it.
func (p *Printer) Stringify(v any) string {
	withMethods, noMethods := p.configs()

	s, err := p.render(withMethods, v)
	if err == nil {
		return s
	}

	p.log().Debug("retrying stringify without String/Error methods",
		"type", fmt.Sprintf("%T", v), "error", err)

	return noMethods.Sprintf("%v", p.quote(v, false))
}

func (p *Printer) render(cs *spew.ConfigState, v any) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stringify panicked: %v", r)
		}
	}()

	s = cs.Sprintf("%v", p.quote(v, true))
	if strings.Contains(s, hookPanicMarker) {
		return "", errHookPanicked
	}
	return s, nil
}

// Returns a copy of [v] with every string quoted, so spew (which prints strings
// bare) renders `["a b" "c"]` rather than `[a b c]`. Values whose String or
// Error method spew will call are left alone when [methods] is set.
func (p *Printer) quote(v any, methods bool) any {
	if v == nil {
		return v
	}
	q := quoter{maxDepth: p.depth(), methods: methods, seen: map[ptrKey]reflect.Value{}}
	out := q.walk(reflect.ValueOf(v), 0)
	return out.Interface()
}

func (p *Printer) PrintReceived(v any) string {
	return p.Palette().Received(p.Stringify(v))
}

func (p *Printer) PrintExpected(v any) string {
	return p.Palette().Expected(p.Stringify(v))
}

// Builds "<label>:\n  <type>: <printed>", where <printed> is the output of
// [print]. The type segment is left out for null and undefined values since it
// would just repeat the value: "<label>: <printed>".
func (p *Printer) PrintWithType(label string, v any, print func(any) string) string {
	vt := valuetype.Of(v)
	if vt == valuetype.Null || vt == valuetype.Undefined {
		return label + ": " + print(v)
	}
	return label + ":\n  " + vt.String() + ": " + print(v)
}
