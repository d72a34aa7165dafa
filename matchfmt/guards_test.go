package matchfmt_test

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/uberbrodt/matchfmt/matchfmt"
)

func TestEnsureNoExpected(t *testing.T) {
	p := plainPrinter()

	assert.NilError(t, p.EnsureNoExpected(nil, ".toBeTruthy"))

	err := p.EnsureNoExpected(5, ".toBeTruthy")
	assert.Error(t, err, "expect(received)[.not].toBeTruthy()\n\n"+
		"Matcher does not accept any arguments.\n"+
		"Got:\n  number: 5")
}

func TestEnsureNoExpected_TypedNilIsAnArgument(t *testing.T) {
	p := plainPrinter()

	err := p.EnsureNoExpected((*point)(nil), ".toBeNil")

	assert.ErrorContains(t, err, "Matcher does not accept any arguments.\nGot: <nil>")
}

func TestEnsureNoExpected_DefaultName(t *testing.T) {
	p := plainPrinter()

	err := p.EnsureNoExpected("x", "")

	ae := matchfmt.IsArgumentError(err)
	assert.Assert(t, ae != nil)
	assert.Equal(t, ae.Matcher, "This")
	assert.Assert(t, cmp.Contains(err.Error(), "expect(received)[.not]This()"))
}

func TestEnsureActualIsNumber(t *testing.T) {
	p := plainPrinter()

	assert.NilError(t, p.EnsureActualIsNumber(5, ".toBe"))
	assert.NilError(t, p.EnsureActualIsNumber(2.5, ".toBe"))
	assert.NilError(t, p.EnsureActualIsNumber(uint16(3), ".toBe"))

	err := p.EnsureActualIsNumber("x", ".toBe")
	assert.Error(t, err, "expect(received)[.not].toBe(expected)\n\n"+
		"Actual value must be a number.\n"+
		"Received:\n  string: \"x\"")
}

func TestEnsureActualIsNumber_DefaultName(t *testing.T) {
	err := plainPrinter().EnsureActualIsNumber(nil, "")

	assert.Error(t, err, "expect(received)[.not]This matcher(expected)\n\n"+
		"Actual value must be a number.\n"+
		"Received: <nil>")
}

func TestEnsureExpectedIsNumber(t *testing.T) {
	p := plainPrinter()

	assert.NilError(t, p.EnsureExpectedIsNumber(int64(5), ".toBeLessThan"))

	err := p.EnsureExpectedIsNumber([]int{1}, ".toBeLessThan")
	assert.Error(t, err, "expect(received)[.not].toBeLessThan(expected)\n\n"+
		"Expected value must be a number.\n"+
		"Got:\n  array: [1]")
}

func TestEnsureNumbers(t *testing.T) {
	p := plainPrinter()

	assert.NilError(t, p.EnsureNumbers(1, 2.5, ".toBeGreaterThan"))

	err := p.EnsureNumbers("a", "b", ".toBeGreaterThan")
	assert.ErrorContains(t, err, "Actual value must be a number.")

	err = p.EnsureNumbers(1, "b", ".toBeGreaterThan")
	assert.ErrorContains(t, err, "Expected value must be a number.")
	assert.ErrorContains(t, err, "Got:\n  string: \"b\"")
}

func TestArgumentError_Is(t *testing.T) {
	err := matchfmt.EnsureActualIsNumber(true, ".toBe")

	assert.Assert(t, errors.Is(err, matchfmt.ErrInvalidArgument))
	assert.Assert(t, matchfmt.IsArgumentError(err) != nil)
	assert.Assert(t, matchfmt.IsArgumentError(errors.New("nope")) == nil)
}

func TestGuards_PackageLevel(t *testing.T) {
	assert.NilError(t, matchfmt.EnsureNoExpected(nil, ".toBeTruthy"))
	assert.NilError(t, matchfmt.EnsureNumbers(1, 2, ".toBeGreaterThan"))

	err := matchfmt.EnsureNoExpected(5, ".toBeTruthy")
	assert.ErrorContains(t, err, "Matcher does not accept any arguments.")

	err = matchfmt.EnsureExpectedIsNumber("5", ".toBeGreaterThan")
	assert.ErrorContains(t, err, "Expected value must be a number.")
}
