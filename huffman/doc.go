// SPDX-License-Identifier: MIT

// Package huffman builds minimum-redundancy Huffman codes over the same
// ranked alphabet that package shannonfano consumes. It exists as the
// comparison baseline: Shannon–Fano is never shorter on average, and the
// difference tells how much a given text loses to the simpler split rule.
//
// Trees are built by github.com/icza/huffman (greedy two-smallest merge):
//  1. Leaves are stably sorted by weight, so equal weights keep rank order.
//  2. The two lightest nodes merge; the first becomes the "0" child, the
//     second the "1" child.
//  3. The merged node is inserted before nodes of equal weight; repeat
//     until one node is left and read codes root-to-leaf.
//
// Equal input always yields the same table. A one-symbol alphabet is coded
// "0", as in shannonfano.
//
// Complexity: O(K·log K) time, O(K) memory for K symbols.
package huffman
