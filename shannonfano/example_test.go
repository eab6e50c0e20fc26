package shannonfano_test

import (
	"fmt"

	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/shannonfano"
)

// ExampleBuild codes the dyadic alphabet {A:.5, B:.25, C:.25}.
func ExampleBuild() {
	r, _ := frequency.FromProbabilities([]string{"A", "B", "C"}, []float64{0.5, 0.25, 0.25})
	table, err := shannonfano.Build(r)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range r {
		fmt.Printf("%s=%s\n", e.Symbol, table[e.Symbol])
	}
	k := shannonfano.Kraft(table)
	fmt.Printf("kraft=%.2f %s\n", k.Sum, k)
	// Output:
	// A=0
	// B=10
	// C=11
	// kraft=1.00 satisfied
}

// ExampleBuild_singleSymbol shows the fixed code of a one-symbol alphabet.
func ExampleBuild_singleSymbol() {
	r, _ := frequency.AnalyzeText("aaa")
	table, _ := shannonfano.Build(r)
	fmt.Printf("%q %v\n", table['a'], shannonfano.Warning(table))
	// Output:
	// "0" shannonfano: degenerate one-symbol alphabet
}
