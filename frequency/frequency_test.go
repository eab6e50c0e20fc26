package frequency_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/infocode/frequency"
)

// TestAnalyze_EmptyInput verifies that an empty sequence yields ErrEmptyInput.
func TestAnalyze_EmptyInput(t *testing.T) {
	_, err := frequency.Analyze([]byte{})
	assert.ErrorIs(t, err, frequency.ErrEmptyInput, "empty byte slice must error")

	_, err = frequency.AnalyzeText("")
	assert.ErrorIs(t, err, frequency.ErrEmptyInput, "empty text must error")
}

// TestAnalyze_CountsAndOrder checks counts, probabilities and the
// descending order on a small word.
func TestAnalyze_CountsAndOrder(t *testing.T) {
	r, err := frequency.AnalyzeText("abracadabra")
	require.NoError(t, err)

	want := frequency.Ranked[rune]{
		{Symbol: 'a', Count: 5, Probability: 5.0 / 11},
		{Symbol: 'b', Count: 2, Probability: 2.0 / 11},
		{Symbol: 'r', Count: 2, Probability: 2.0 / 11},
		{Symbol: 'c', Count: 1, Probability: 1.0 / 11},
		{Symbol: 'd', Count: 1, Probability: 1.0 / 11},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 11, r.Total(), "total equals input length")
}

// TestAnalyze_TiesFollowFirstSeen ensures equal counts keep encounter order
// regardless of the symbols' natural ordering.
func TestAnalyze_TiesFollowFirstSeen(t *testing.T) {
	r, err := frequency.Analyze([]byte("zyxzyx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("zyx"), r.Symbols(), "ties must keep first-seen order")

	// Repeat to make sure no hash iteration leaks into the result.
	for i := 0; i < 50; i++ {
		again, err := frequency.Analyze([]byte("zyxzyx"))
		require.NoError(t, err)
		require.Equal(t, r, again, "ranking must be reproducible")
	}
}

// TestAnalyze_ProbabilitiesSumToOne checks the distribution invariant on a
// Cyrillic sample, the kind of text the tool was built for.
func TestAnalyze_ProbabilitiesSumToOne(t *testing.T) {
	r, err := frequency.AnalyzeText("Артём Ермолов")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Mass(), frequency.SumTolerance, "Σp must be 1")
	for _, e := range r {
		assert.Greater(t, e.Probability, 0.0, "probability must be positive")
		assert.LessOrEqual(t, e.Probability, 1.0, "probability must be ≤ 1")
	}
	assert.Equal(t, 'р', r[0].Symbol, "'р', 'м' and 'о' tie; 'р' is seen first")
}

// TestAnalyzeText_Normalization shows that NFC folds a decomposed letter
// into its precomposed form.
func TestAnalyzeText_Normalization(t *testing.T) {
	decomposed := "\u0435\u0308\u0451" // е + combining diaeresis, then precomposed ё

	raw, err := frequency.AnalyzeText(decomposed)
	require.NoError(t, err)
	assert.Len(t, raw, 3, "without normalization three code points differ")

	nfc, err := frequency.AnalyzeText(decomposed, frequency.WithNormalization(norm.NFC))
	require.NoError(t, err)
	require.Len(t, nfc, 1, "NFC merges both spellings")
	assert.Equal(t, 2, nfc[0].Count)
}

// TestFromProbabilities validates the explicit-distribution constructor.
func TestFromProbabilities(t *testing.T) {
	r, err := frequency.FromProbabilities([]string{"B", "A", "C"}, []float64{0.25, 0.5, 0.25})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, r.Symbols(), "sorted descending, ties in argument order")

	cases := []struct {
		name  string
		syms  []string
		probs []float64
		want  error
	}{
		{"empty", nil, nil, frequency.ErrEmptyInput},
		{"mismatch", []string{"A"}, []float64{0.5, 0.5}, frequency.ErrLengthMismatch},
		{"duplicate", []string{"A", "A"}, []float64{0.5, 0.5}, frequency.ErrDuplicateSymbol},
		{"zero", []string{"A", "B"}, []float64{1, 0}, frequency.ErrBadProbability},
		{"nan", []string{"A"}, []float64{math.NaN()}, frequency.ErrBadProbability},
		{"sum", []string{"A", "B"}, []float64{0.5, 0.4}, frequency.ErrBadProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frequency.FromProbabilities(tc.syms, tc.probs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEntropyAndRedundancy checks H, Hmax and R on known distributions.
func TestEntropyAndRedundancy(t *testing.T) {
	uniform, err := frequency.Analyze([]byte("abcd"))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, frequency.Entropy(uniform), 1e-12, "uniform over 4 symbols has H=2")
	assert.InDelta(t, 2.0, frequency.MaxEntropy(uniform), 1e-12)
	assert.InDelta(t, 0.0, frequency.Redundancy(uniform), 1e-12, "uniform source has no redundancy")

	skewed, err := frequency.FromProbabilities([]string{"A", "B", "C"}, []float64{0.5, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, frequency.Entropy(skewed), 1e-12)
	assert.InDelta(t, 1-1.5/math.Log2(3), frequency.Redundancy(skewed), 1e-12)

	single, err := frequency.AnalyzeText("aaaa")
	require.NoError(t, err)
	assert.Equal(t, 0.0, frequency.Entropy(single), "single symbol carries no information")
	assert.Equal(t, 0.0, frequency.Redundancy(single), "Hmax=0 is reported as zero redundancy")
}

// TestParseForm covers the accepted normalization names.
func TestParseForm(t *testing.T) {
	f, ok := frequency.ParseForm("NFKD")
	assert.True(t, ok)
	assert.Equal(t, norm.NFKD, f)

	_, ok = frequency.ParseForm("latin1")
	assert.False(t, ok, "unknown names are rejected")
}
