package filesizehist

import (
	"math/bits"
	"sort"
)

const (
	// MinEdgeLog2 is the exponent of the first power of two edge, files of 1 to 31 bytes share a bucket.
	MinEdgeLog2 = 5

	// MaxEdgeLog2 is the exponent of the last edge, everything from 2G up goes to the open-ended bucket.
	MaxEdgeLog2 = 31
)

// Edges returns bucket lower boundaries for values up to maxValue.
//
// Result is [0, 1, 32, 64, ..., 2^k], k = min(ceil(log2(maxValue)), 31), k >= 5.
// Last bucket is open-ended.
func Edges(maxValue int64) []int64 {
	k := ceilLog2(maxValue)
	if k < MinEdgeLog2 {
		k = MinEdgeLog2
	}

	if k > MaxEdgeLog2 {
		k = MaxEdgeLog2
	}

	edges := make([]int64, 0, 2+k-MinEdgeLog2+1)
	edges = append(edges, 0, 1)

	for p := MinEdgeLog2; p <= k; p++ {
		edges = append(edges, int64(1)<<p)
	}

	return edges
}

// ceilLog2 returns ceil(log2(v)) for v >= 2 and 0 otherwise.
func ceilLog2(v int64) int {
	if v <= 1 {
		return 0
	}

	return bits.Len64(uint64(v - 1))
}

// BucketIndex returns index of the bucket that holds v.
//
// A value equal to an edge belongs to the bucket starting at that edge,
// values below the first edge are clamped to bucket 0.
func BucketIndex(edges []int64, v float64) int {
	i := sort.Search(len(edges), func(i int) bool {
		return float64(edges[i]) > v
	}) - 1

	if i < 0 {
		return 0
	}

	return i
}
