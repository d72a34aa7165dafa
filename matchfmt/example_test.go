package matchfmt_test

import (
	"fmt"

	"github.com/uberbrodt/matchfmt/matchfmt"
)

func ExamplePluralize() {
	fmt.Println(matchfmt.Pluralize("apple", 1))
	fmt.Println(matchfmt.Pluralize("apple", 2))
	fmt.Println(matchfmt.Pluralize("apple", 20))
	// Output:
	// one apple
	// two apples
	// 20 apples
}

func ExamplePrinter_EnsureNumbers() {
	p := matchfmt.New(matchfmt.WithPalette(matchfmt.PlainPalette()))

	err := p.EnsureNumbers(3, "4", ".toBeGreaterThan")
	fmt.Println(err)
	// Output:
	// expect(received)[.not].toBeGreaterThan(expected)
	//
	// Expected value must be a number.
	// Got:
	//   string: "4"
}
