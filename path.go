// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cascade

import "path/filepath"

// extraSuffixes returns the names appended to each depth's directory, in
// override order. The final segment is included at every depth, not just
// the deepest, so a leaf named file may live in any ancestor directory.
func extraSuffixes(commonNames, segments []string) [][]string {
	suffixes := make([][]string, 0, len(commonNames)+2)
	suffixes = append(suffixes, nil)
	for _, name := range commonNames {
		suffixes = append(suffixes, []string{name})
	}
	if len(segments) > 0 {
		suffixes = append(suffixes, []string{segments[len(segments)-1]})
	}
	return suffixes
}

// candidateBases enumerates every extensionless candidate, from the root
// down to the most specific directory.
func candidateBases(root string, segments []string, suffixes [][]string) []string {
	bases := make([]string, 0, (len(segments)+1)*len(suffixes))
	for depth := -1; depth < len(segments); depth++ {
		dir := filepath.Join(append([]string{root}, segments[:depth+1]...)...)
		for _, suffix := range suffixes {
			bases = append(bases, filepath.Join(append([]string{dir}, suffix...)...))
		}
	}
	return bases
}
