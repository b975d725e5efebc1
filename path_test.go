// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cascade

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtraSuffixes(t *testing.T) {
	testCases := []struct {
		name        string
		commonNames []string
		segments    []string
		expected    [][]string
	}{
		{
			name:     "no common names and no segments",
			expected: [][]string{nil},
		},
		{
			name:        "default common names and no segments",
			commonNames: DefaultCommonNames(),
			expected:    [][]string{nil, {"common"}, {"index"}},
		},
		{
			name:        "last segment is appended",
			commonNames: DefaultCommonNames(),
			segments:    []string{"dev", "CustomerA"},
			expected:    [][]string{nil, {"common"}, {"index"}, {"CustomerA"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, extraSuffixes(tc.commonNames, tc.segments))
		})
	}
}

func TestCandidateBases(t *testing.T) {
	t.Run("will have one base per depth and suffix", func(t *testing.T) {
		segments := []string{"a", "b", "c"}
		suffixes := extraSuffixes(DefaultCommonNames(), segments)

		bases := candidateBases("root", segments, suffixes)
		require.Len(t, bases, (len(segments)+1)*len(suffixes))
	})

	t.Run("will order bases from the root to the most specific directory", func(t *testing.T) {
		segments := []string{"dev"}

		bases := candidateBases("conf", segments, extraSuffixes([]string{"common"}, segments))
		require.Equal(t, []string{
			"conf",
			"conf/common",
			"conf/dev",
			"conf/dev",
			"conf/dev/common",
			"conf/dev/dev",
		}, bases)
	})

	t.Run("will only have the root for no suffixes and no segments", func(t *testing.T) {
		require.Equal(t, []string{"/etc/app"}, candidateBases("/etc/app", nil, [][]string{nil}))
	})
}
