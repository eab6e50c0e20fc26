// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/infocode/bitstream"
	"github.com/katalvlaran/infocode/config"
	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/huffman"
	"github.com/katalvlaran/infocode/internal/source"
	"github.com/katalvlaran/infocode/report"
	"github.com/katalvlaran/infocode/shannonfano"
)

var (
	// ErrKraftViolated reports a code table whose Kraft sum exceeds 1.
	// It can only come from a builder defect.
	ErrKraftViolated = errors.New("app: Kraft inequality violated")

	// ErrRoundTrip reports a packed text that did not decode to itself.
	ErrRoundTrip = errors.New("app: bitstream round trip mismatch")
)

// Analysis is everything computed for one text.
type Analysis struct {
	Name        string
	Ranked      frequency.Ranked[rune]
	ShannonFano shannonfano.Table[rune]
	Huffman     shannonfano.Table[rune]
	Packed      bitstream.Packed
	Summary     report.Summary
}

// Analyzer runs the coding pipeline. It is safe for concurrent use.
type Analyzer struct {
	log       *zap.Logger
	normalize bool
	form      norm.Form
}

// NewAnalyzer returns an Analyzer logging to log; nil means no logging.
// form is a normalization name accepted by frequency.ParseForm, or "" to
// count code points as they are.
func NewAnalyzer(log *zap.Logger, form string) (*Analyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Analyzer{log: log}
	if form != "" {
		f, ok := frequency.ParseForm(form)
		if !ok {
			return nil, fmt.Errorf("app: unknown normalization %q", form)
		}
		a.normalize, a.form = true, f
	}

	return a, nil
}

// Analyze codes one text.
func (a *Analyzer) Analyze(name, text string) (*Analysis, error) {
	log := a.log.With(zap.String("input", name))
	if a.normalize {
		// the packed message must use the same symbols as the ranking
		text = a.form.String(text)
	}

	ranked, err := frequency.AnalyzeText(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("alphabet ranked", zap.Int("symbols", ranked.Total()), zap.Int("alphabet", len(ranked)))

	sf, err := shannonfano.Build(ranked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if w := shannonfano.Warning(sf); w != nil {
		log.Warn("single-symbol alphabet coded as \"0\"", zap.Error(w))
	}
	hf, err := huffman.Build(ranked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := checkKraft(log, "shannon-fano", sf); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := checkKraft(log, "huffman", hf); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	runes := []rune(text)
	packed, err := bitstream.Encode(runes, sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	back, err := bitstream.Decode(packed, sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !slices.Equal(runes, back) {
		return nil, fmt.Errorf("%s: %w", name, ErrRoundTrip)
	}

	sum := report.Summarize(name, ranked, sf, hf)
	log.Info("text coded",
		zap.Float64("entropy", sum.Entropy),
		zap.Float64("shannon_fano_avg", sum.ShannonFanoAvg),
		zap.Float64("huffman_avg", sum.HuffmanAvg),
		zap.Int("packed_bits", packed.Bits))

	return &Analysis{
		Name:        name,
		Ranked:      ranked,
		ShannonFano: sf,
		Huffman:     hf,
		Packed:      packed,
		Summary:     sum,
	}, nil
}

func checkKraft(log *zap.Logger, code string, t shannonfano.Table[rune]) error {
	k := shannonfano.Kraft(t)
	if k.Satisfied {
		return nil
	}
	log.Error("Kraft inequality violated", zap.String("code", code), zap.Float64("sum", k.Sum))

	return fmt.Errorf("%s: %w (sum=%v)", code, ErrKraftViolated, k.Sum)
}

// AnalyzeAll reads and codes every input in parallel. Results keep the
// order of inputs; the first failure cancels the remaining work.
func (a *Analyzer) AnalyzeAll(ctx context.Context, inputs []config.Input) ([]*Analysis, error) {
	out := make([]*Analysis, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := source.Read(in.Path, in.Encoding)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			res, err := a.Analyze(in.Name, text)
			if err != nil {
				return err
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
