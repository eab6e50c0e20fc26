// SPDX-License-Identifier: MIT

package shannonfano

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// KraftSum returns Σ 2^−l over lengths.
func KraftSum(lengths []int) float64 {
	sum := 0.0
	for _, l := range lengths {
		sum += math.Ldexp(1, -l)
	}

	return sum
}

// Kraft evaluates the Kraft inequality for t. Satisfied is true when the
// sum is at most 1+KraftEpsilon.
//
// This is a structural sanity check. A violation means the table was not
// produced by a correct prefix-code builder; nothing here repairs it.
//
// Complexity: O(K) time, O(K) memory for the length slice.
func Kraft[S comparable](t Table[S]) KraftResult {
	sum := KraftSum(t.Lengths())

	return KraftResult{Sum: sum, Satisfied: sum <= 1+KraftEpsilon}
}

// IsPrefixFree reports whether no code of t is a prefix of another and no
// code is empty.
func IsPrefixFree[S comparable](t Table[S]) bool {
	return checkPrefixes(t) == nil
}

// Validate checks that every code is a non-empty binary string and that
// the table is prefix-free.
//
// Complexity: O(K·log K·L) time for K codes of length at most L.
func Validate[S comparable](t Table[S]) error {
	for s, c := range t {
		if c == "" {
			return fmt.Errorf("%w: symbol %v", ErrEmptyCode, s)
		}
		if strings.Trim(c, "01") != "" {
			return fmt.Errorf("%w: symbol %v has %q", ErrNonBinaryCode, s, c)
		}
	}

	return checkPrefixes(t)
}

// checkPrefixes sorts the codes; after sorting, a code that prefixes any
// later code also prefixes its immediate successor.
func checkPrefixes[S comparable](t Table[S]) error {
	codes := make([]string, 0, len(t))
	for _, c := range t {
		if c == "" {
			return ErrEmptyCode
		}
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return fmt.Errorf("%w: %q prefixes %q", ErrNotPrefixFree, codes[i-1], codes[i])
		}
	}

	return nil
}
