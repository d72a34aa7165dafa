package matchfmt

import (
	"github.com/uberbrodt/fungo/fun"

	"github.com/uberbrodt/matchfmt/matchfmt/valuetype"
)

// Returns an [*ArgumentError] unless [expected] is nil (ie: the matcher was
// called without an argument). [matcherName] defaults to "This".
func (p *Printer) EnsureNoExpected(expected any, matcherName string) error {
	if matcherName == "" {
		matcherName = "This"
	}
	if valuetype.Of(expected) == valuetype.Undefined {
		return nil
	}

	return newArgumentError(matcherName,
		p.MatcherHint("[.not]"+matcherName, ExpectedLabel(""))+"\n\n"+
			"Matcher does not accept any arguments.\n"+
			p.PrintWithType("Got", expected, p.PrintExpected))
}

// Returns an [*ArgumentError] unless [actual] is a number. [matcherName]
// defaults to "This matcher".
func (p *Printer) EnsureActualIsNumber(actual any, matcherName string) error {
	if matcherName == "" {
		matcherName = "This matcher"
	}
	if valuetype.Of(actual) == valuetype.Number {
		return nil
	}

	return newArgumentError(matcherName,
		p.MatcherHint("[.not]"+matcherName)+"\n\n"+
			"Actual value must be a number.\n"+
			p.PrintWithType("Received", actual, p.PrintReceived))
}

// Returns an [*ArgumentError] unless [expected] is a number. [matcherName]
// defaults to "This matcher".
func (p *Printer) EnsureExpectedIsNumber(expected any, matcherName string) error {
	if matcherName == "" {
		matcherName = "This matcher"
	}
	if valuetype.Of(expected) == valuetype.Number {
		return nil
	}

	return newArgumentError(matcherName,
		p.MatcherHint("[.not]"+matcherName)+"\n\n"+
			"Expected value must be a number.\n"+
			p.PrintWithType("Got", expected, p.PrintExpected))
}

// Checks [actual] and then [expected]; the first failure is returned.
func (p *Printer) EnsureNumbers(actual, expected any, matcherName string) error {
	guards := []func() error{
		func() error { return p.EnsureActualIsNumber(actual, matcherName) },
		func() error { return p.EnsureExpectedIsNumber(expected, matcherName) },
	}

	return fun.Reduce(guards, error(nil), func(guard func() error, err error) error {
		if err != nil {
			return err
		}
		return guard()
	})
}
