// Package core_test verifies that status changes and queries can interleave.
package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var errDistNonZero = errors.New("source distance is not zero")

// TestConcurrentDownAndQuery toggles nodes while another goroutine runs
// shortest-path queries. No query may fail or report a non-zero source.
func TestConcurrentDownAndQuery(t *testing.T) {
	g := referenceGraph(t)
	const rounds = 200

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			n := i % len(referenceLabels)
			if err := g.SetNodeStatus(n, false); err != nil {
				record(err)
			}
			if err := g.SetNodeStatus(n, true); err != nil {
				record(err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			res, err := g.ShortestPaths(idxU)
			if err != nil {
				record(err)
				continue
			}
			if res.Dist[idxU] != 0 {
				record(errDistNonZero)
			}
		}
	}()
	wg.Wait()

	require.Empty(t, errs)
	require.Empty(t, g.DownNodes(), "every down was followed by a restore")
}
