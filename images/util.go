package images

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"sync"
)

// Checksum generates a deterministic checksum of a plane's dimensions and
// samples. Two planes with equal checksums are, for practical purposes, equal.
//
// Example:
//
// ```go
//
//	fmt.Printf("AE checksum: %s\n", Checksum(edges))
//
// ```
func Checksum(p *Plane) string {
	if p == nil || len(p.Pix) == 0 {
		return "empty"
	}
	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", p.Width, p.Height)
	hash.Write(p.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Parallel splits the range [0, dataSize) into one contiguous partition per
// CPU and calls fn for each partition concurrently. Small ranges are handled
// on the calling goroutine. fn must only write to memory owned by its
// partition.
//
// Example:
//
//	Parallel(p.Height, func(start, end int) {
//		for y := start; y < end; y++ {
//			// process row y
//		}
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	// For small data sizes, parallel processing overhead isn't worth it.
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	wg.Wait()
}
