package huffman_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/huffman"
	"github.com/katalvlaran/infocode/shannonfano"
)

// TestBuild_Errors covers the empty and duplicate rankings.
func TestBuild_Errors(t *testing.T) {
	_, err := huffman.Build(frequency.Ranked[rune]{})
	assert.ErrorIs(t, err, huffman.ErrEmptyAlphabet)

	_, err = huffman.Build(frequency.Ranked[rune]{{Symbol: 'x', Probability: .5}, {Symbol: 'x', Probability: .5}})
	assert.ErrorIs(t, err, huffman.ErrDuplicateSymbol)
}

// TestBuild_SingleSymbol mirrors the Shannon–Fano base case.
func TestBuild_SingleSymbol(t *testing.T) {
	r, err := frequency.AnalyzeText("qqq")
	require.NoError(t, err)
	table, err := huffman.Build(r)
	require.NoError(t, err)
	assert.Equal(t, shannonfano.Table[rune]{'q': "0"}, table)
}

// TestBuild_Dyadic checks {A:.5, B:.25, C:.25}: B and C merge first into
// a node of weight .5, which is placed before A and so takes the "0" side.
func TestBuild_Dyadic(t *testing.T) {
	r, err := frequency.FromProbabilities([]string{"A", "B", "C"}, []float64{0.5, 0.25, 0.25})
	require.NoError(t, err)

	table, err := huffman.Build(r)
	require.NoError(t, err)
	assert.Equal(t, shannonfano.Table[string]{"A": "1", "B": "00", "C": "01"}, table)
	assert.InDelta(t, 1.5, shannonfano.AverageLength(r, table), 1e-12)
}

// TestBuild_Counts weights leaves by observed counts: the codes of
// "aaaabbcc" match the dyadic case.
func TestBuild_Counts(t *testing.T) {
	r, err := frequency.AnalyzeText("aaaabbcc")
	require.NoError(t, err)

	table, err := huffman.Build(r)
	require.NoError(t, err)
	assert.Equal(t, shannonfano.Table[rune]{'a': "1", 'b': "00", 'c': "01"}, table)
}

// TestBuild_SkewedDistribution codes a geometric source; each symbol is one
// bit longer than the previous one, the last two share a length.
func TestBuild_SkewedDistribution(t *testing.T) {
	r, err := frequency.FromProbabilities(
		[]string{"A", "B", "C", "D", "E"},
		[]float64{0.5, 0.25, 0.125, 0.0625, 0.0625})
	require.NoError(t, err)

	table, err := huffman.Build(r)
	require.NoError(t, err)
	require.NoError(t, shannonfano.Validate(table))
	lengths := make([]int, 0, len(r))
	for _, e := range r {
		lengths = append(lengths, len(table[e.Symbol]))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 4}, lengths)
}

// TestBuild_NeverWorseThanShannonFano compares average lengths on random
// alphabets; Huffman is optimal, so it must not lose.
func TestBuild_NeverWorseThanShannonFano(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		n := 200 + rng.Intn(400)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(rng.ExpFloat64() * 6)
		}
		r, err := frequency.Analyze(data)
		require.NoError(t, err)

		hf, err := huffman.Build(r)
		require.NoError(t, err)
		sf, err := shannonfano.Build(r)
		require.NoError(t, err)

		require.NoError(t, shannonfano.Validate(hf), "trial %d", trial)
		require.True(t, shannonfano.Kraft(hf).Satisfied, "trial %d", trial)
		require.LessOrEqual(t,
			shannonfano.AverageLength(r, hf),
			shannonfano.AverageLength(r, sf)+1e-12,
			"trial %d", trial)
	}
}

// TestBuild_Deterministic rebuilds the same table many times.
func TestBuild_Deterministic(t *testing.T) {
	r, err := frequency.AnalyzeText("aabbccddeeff")
	require.NoError(t, err)
	first, err := huffman.Build(r)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := huffman.Build(r)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
