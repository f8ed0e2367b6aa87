// SPDX-License-Identifier: MIT

package invert

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chromaseq/colorspace"
	"github.com/katalvlaran/chromaseq/sequence"
)

// stopCheckStride is how often a parallel worker re-checks whether a
// lower-index match already ended its usefulness.
const stopCheckStride = 256

// Invert scans the sequence identified by m for an index whose color
// lies within tolerance of target.
//
// The scan runs from m's natural start index up to MaxSearch inclusive
// and returns the first qualifying index. Exhaustion yields
// Result{Found: false} with the minimum distance observed — a valid
// outcome, not an error.
//
// Errors:
//   - sequence.ErrUnknownMethod / sequence.ErrBadParameter from the
//     forward map; nothing else can fail.
//
// Concurrency: pure and reentrant. With WithWorkers(k>1) the range is
// partitioned into k disjoint chunks; ties break toward the lowest
// index, so the parallel result is identical to the serial one.
//
// Complexity: O(MaxSearch) forward evaluations worst case.
func Invert(target colorspace.RGB, m sequence.Method, seed int64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if m == nil {
		return Result{}, sequence.ErrUnknownMethod
	}

	first := m.FirstIndex()
	if o.Workers > 1 {
		return invertParallel(target, m, seed, first, o)
	}

	return invertSerial(target, m, seed, first, o)
}

// InvertHex parses a wire-format color and inverts it.
//
// Errors: colorspace.ErrMalformedColor on bad input, then as Invert.
func InvertHex(hex string, m sequence.Method, seed int64, opts ...Option) (Result, error) {
	target, err := colorspace.ParseHex(hex)
	if err != nil {
		return Result{}, err
	}

	return Invert(target, m, seed, opts...)
}

// metric returns the distance function selected by the options.
func metric(o Options) func(a, b colorspace.RGB) float64 {
	if o.Perceptual {
		return colorspace.DistanceLab
	}

	return colorspace.Distance
}

// invertSerial is the baseline bounded scan.
func invertSerial(target colorspace.RGB, m sequence.Method, seed int64, first uint32, o Options) (Result, error) {
	dist := metric(o)
	best := math.Inf(1)

	for n := first; ; n++ {
		c, err := sequence.Color(m, n, seed)
		if err != nil {
			return Result{}, err
		}

		d := dist(c, target)
		if d < o.Tolerance {
			return Result{Found: true, Index: n, Distance: d}, nil
		}
		if d < best {
			best = d
		}

		if n == o.MaxSearch { // inclusive bound; also guards uint32 wrap
			break
		}
	}

	return Result{Found: false, Distance: best}, nil
}

// invertParallel partitions [first, MaxSearch] into contiguous chunks,
// one per worker. Each worker reports its first (lowest) qualifying
// index; the merge keeps the global lowest, so the outcome matches the
// serial scan exactly.
func invertParallel(target colorspace.RGB, m sequence.Method, seed int64, first uint32, o Options) (Result, error) {
	if o.MaxSearch < first {
		return Result{Found: false, Distance: math.Inf(1)}, nil
	}

	total := uint64(o.MaxSearch-first) + 1
	workers := o.Workers
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := total / uint64(workers)
	rem := total % uint64(workers)

	dist := metric(o)

	var (
		mu      sync.Mutex
		found   Result
		minDist = math.Inf(1)
	)

	g := new(errgroup.Group)
	lo := uint64(first)
	for w := 0; w < workers; w++ {
		size := chunk
		if uint64(w) < rem {
			size++
		}
		start := uint32(lo)
		end := uint32(lo + size - 1)
		lo += size

		g.Go(func() error {
			localBest := math.Inf(1)
			for n := start; ; n++ {
				if (n-start)%stopCheckStride == 0 {
					mu.Lock()
					stop := found.Found && found.Index < start
					mu.Unlock()
					if stop {
						return nil
					}
				}

				c, err := sequence.Color(m, n, seed)
				if err != nil {
					return err
				}

				d := dist(c, target)
				if d < o.Tolerance {
					mu.Lock()
					if !found.Found || n < found.Index {
						found = Result{Found: true, Index: n, Distance: d}
					}
					mu.Unlock()

					return nil
				}
				if d < localBest {
					localBest = d
				}

				if n == end {
					break
				}
			}

			mu.Lock()
			if localBest < minDist {
				minDist = localBest
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if found.Found {
		return found, nil
	}

	return Result{Found: false, Distance: minDist}, nil
}
