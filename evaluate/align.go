// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"
	"math"

	"github.com/staccato-dev/staccato/timing"
)

var (
	// ErrEmptySequence indicates one or both onset sequences are empty.
	ErrEmptySequence = errors.New("evaluate: onset sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires
	// FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("evaluate: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBandTooNarrow indicates a Sakoe-Chiba window smaller than the
	// length difference of the two sequences: no complete warp fits
	// inside the band.
	ErrBandTooNarrow = errors.New("evaluate: window band admits no complete warp")
)

// MemoryMode controls how Align stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix keeps the entire (n+1)×(m+1) matrix, allowing distance
	// plus full backtrace of the optimal warping path. Memory: O(n·m).
	FullMatrix MemoryMode = iota

	// RollingArray keeps only two rows. Memory drops to O(min(n, m)),
	// but the path cannot be recovered.
	RollingArray
)

// AlignOptions configures the dynamic-time-warping alignment.
//
//   - Window — maximum deviation |i−j| allowed (Sakoe–Chiba band); 0 or
//     negative means unconstrained.
//   - SlopePenalty — extra cost for insertion/deletion steps, biasing the
//     warp toward the diagonal.
//   - ReturnPath — backtrack and return the optimal pairing; requires
//     MemoryMode=FullMatrix.
//   - MemoryMode — FullMatrix or RollingArray storage.
type AlignOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// Align computes the dynamic-time-warping distance between two onset
// sequences, in cumulative seconds of timing deviation. When ReturnPath
// is set, the returned path pairs indexes of a with indexes of b along
// the optimal warp. A Window smaller than the length difference of the
// sequences leaves no complete warp inside the band; Align reports that
// as ErrBandTooNarrow instead of an infinite distance.
func Align(a, b timing.PointList, opts *AlignOptions) (distance float64, path [][2]int, err error) {
	as, bs := a.Seconds(), b.Seconds()
	n, m := len(as), len(bs)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}

	window := 0
	penalty := 0.0
	mem := FullMatrix
	wantPath := false
	if opts != nil {
		window = opts.Window
		penalty = opts.SlopePenalty
		mem = opts.MemoryMode
		wantPath = opts.ReturnPath
	}
	if wantPath && mem != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}

	inf := math.Inf(1)
	var dp [][]float64
	if mem == FullMatrix {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
	} else {
		dp = [][]float64{make([]float64, m+1), make([]float64, m+1)}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		cur, prev := i, i-1
		if mem == RollingArray {
			cur, prev = i%2, (i-1)%2
		}
		row := dp[cur]
		for j := 0; j <= m; j++ {
			row[j] = inf
		}

		// band-limited sweep; cells outside stay infinite
		lo, hi := 1, m
		if window > 0 {
			if l := i - window; l > lo {
				lo = l
			}
			if h := i + window; h < hi {
				hi = h
			}
		}
		for j := lo; j <= hi; j++ {
			best := dp[prev][j-1]
			if v := dp[prev][j] + penalty; v < best {
				best = v
			}
			if v := row[j-1] + penalty; v < best {
				best = v
			}
			row[j] = math.Abs(as[i-1]-bs[j-1]) + best
		}
	}

	if mem == FullMatrix {
		distance = dp[n][m]
	} else {
		distance = dp[n%2][m]
	}
	if math.IsInf(distance, 1) {
		return 0, nil, ErrBandTooNarrow
	}

	if wantPath {
		i, j := n, m
		for i > 0 && j > 0 {
			path = append(path, [2]int{i - 1, j - 1})
			prevCost := dp[i][j] - math.Abs(as[i-1]-bs[j-1])
			switch {
			case dp[i-1][j] == prevCost-penalty:
				i--
			case dp[i][j-1] == prevCost-penalty:
				j--
			default:
				i--
				j--
			}
		}
		for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
			path[l], path[r] = path[r], path[l]
		}
	}

	return distance, path, nil
}
