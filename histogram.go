// Package filesizehist implements file size histogram with logarithmic buckets.
package filesizehist

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Histogram groups file sizes by buckets and keeps summary statistics.
type Histogram struct {
	// Edges are lower boundaries of buckets, last bucket is open-ended.
	Edges []int64

	// Counts keeps number of files per bucket.
	Counts []int

	Files int
	Total int64
	Max   int64

	Mean         float64
	Median       float64
	MeanBucket   int
	MedianBucket int
}

// New builds histogram of sizes.
func New(sizes []int64) (*Histogram, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyInput
	}

	var maxSize int64

	for _, s := range sizes {
		if s > maxSize {
			maxSize = s
		}
	}

	h := &Histogram{
		Edges: Edges(maxSize),
		Max:   maxSize,
	}
	h.Counts = make([]int, len(h.Edges))

	for _, s := range sizes {
		h.Add(s)
	}

	h.Mean = float64(h.Total) / float64(h.Files)
	h.Median = median(sizes)
	h.MeanBucket = BucketIndex(h.Edges, h.Mean)
	h.MedianBucket = BucketIndex(h.Edges, h.Median)

	return h, nil
}

// Add counts a size in its bucket.
//
// Statistics are not updated, New calculates them once all sizes are added.
func (h *Histogram) Add(size int64) {
	h.Counts[BucketIndex(h.Edges, float64(size))]++
	h.Files++
	h.Total += size
}

func median(sizes []int64) float64 {
	sorted := make([]int64, len(sizes))
	copy(sorted, sizes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
}

// Labels returns human-readable ranges of buckets, "lo~hi" or "lo~" for the last one.
func (h *Histogram) Labels() []string {
	labels := make([]string, len(h.Edges))

	for i, lo := range h.Edges {
		labels[i] = Format(IntegerValue(lo)) + "~"

		if i < len(h.Edges)-1 {
			labels[i] += Format(IntegerValue(h.Edges[i+1]))
		}
	}

	return labels
}

// MeanText returns mean annotation.
func (h *Histogram) MeanText() string {
	return "Mean: " + Format(FloatValue(h.Mean))
}

// MedianText returns median annotation.
func (h *Histogram) MedianText() string {
	return "Median: " + Format(FloatValue(h.Median))
}

// FilesText returns file count annotation.
func (h *Histogram) FilesText() string {
	return "Files: " + strconv.Itoa(h.Files)
}

// TotalText returns total size annotation.
func (h *Histogram) TotalText() string {
	return "Total: " + Format(FloatValue(float64(h.Total)))
}

// String renders buckets as a text table.
func (h *Histogram) String() string {
	if len(h.Counts) == 0 {
		return ""
	}

	mins := make([]string, len(h.Edges))
	maxs := make([]string, len(h.Edges))
	nLen := len("min")

	for i, lo := range h.Edges {
		mins[i] = Format(IntegerValue(lo))
		maxs[i] = "inf"

		if i < len(h.Edges)-1 {
			maxs[i] = Format(IntegerValue(h.Edges[i+1]))
		}

		if len(mins[i]) > nLen {
			nLen = len(mins[i])
		}

		if len(maxs[i]) > nLen {
			nLen = len(maxs[i])
		}
	}

	cLen := len(strconv.Itoa(h.Files))
	if cLen < len("cnt") {
		cLen = len("cnt")
	}

	var res strings.Builder

	fmt.Fprintf(&res, "[%*s %*s] %*s total%%", nLen, "min", nLen, "max", cLen, "cnt")
	fmt.Fprintf(&res, " (files: %d, total: %s, mean: %s, median: %s)\n",
		h.Files, Format(FloatValue(float64(h.Total))), Format(FloatValue(h.Mean)), Format(FloatValue(h.Median)))

	for i, cnt := range h.Counts {
		percent := float64(100*cnt) / float64(h.Files)

		fmt.Fprintf(&res, "[%*s %*s] %*d %5.2f%%", nLen, mins[i], nLen, maxs[i], cLen, cnt, percent)

		if dots := strings.Repeat(".", int(percent)); len(dots) > 0 {
			fmt.Fprint(&res, " ", dots)
		}

		fmt.Fprintln(&res)
	}

	return res.String()
}
