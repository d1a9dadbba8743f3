package analysis

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Mine sweeps nonces 0..maxNonce-1 appended to data in decimal, looking for
// a digest with `difficulty` leading zero hex digits. Returns the first
// qualifying nonce, or Found=false when the sweep is exhausted.
// Complexity: O(attempts × cost of one hash).
func Mine(h HashFunc, data []byte, difficulty int, maxNonce uint64) (MiningResult, error) {
	if h == nil {
		return MiningResult{}, ErrNilHash
	}
	if difficulty < 0 || difficulty > 64 {
		return MiningResult{}, ErrBadDifficulty
	}

	target := strings.Repeat("0", difficulty)
	start := time.Now()
	for nonce := uint64(0); nonce < maxNonce; nonce++ {
		digest, err := h(candidate(data, nonce))
		if err != nil {
			return MiningResult{}, err
		}
		if strings.HasPrefix(digest, target) {
			return MiningResult{
				Found:    true,
				Nonce:    nonce,
				Digest:   digest,
				Attempts: nonce + 1,
				Elapsed:  time.Since(start),
			}, nil
		}
	}

	return MiningResult{Attempts: maxNonce, Elapsed: time.Since(start)}, nil
}

// MineParallel is Mine fanned out across workers: worker w sweeps nonces
// w, w+workers, w+2·workers, …. Invocations share no state, so the sweep
// scales with the worker count. The first qualifying nonce found cancels the
// remaining workers; when several workers qualify before the cancellation
// lands, the lowest of those nonces wins. A worker may be stopped before
// reaching a smaller qualifying nonce in its stripe, so across runs the
// returned nonce depends on scheduling; only Found and the leading-zero
// property of Digest are stable. Callers needing the globally smallest
// qualifying nonce should use Mine.
func MineParallel(ctx context.Context, h HashFunc, data []byte, difficulty int, maxNonce uint64, workers int) (MiningResult, error) {
	if h == nil {
		return MiningResult{}, ErrNilHash
	}
	if difficulty < 0 || difficulty > 64 {
		return MiningResult{}, ErrBadDifficulty
	}
	if workers < 1 {
		workers = 1
	}

	target := strings.Repeat("0", difficulty)
	start := time.Now()

	var (
		mu       sync.Mutex
		best     MiningResult
		attempts uint64
	)
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	var closeOnce sync.Once

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			local := uint64(0)
			for nonce := uint64(w); nonce < maxNonce; nonce += uint64(workers) {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case <-done:
					mu.Lock()
					attempts += local
					mu.Unlock()
					return nil
				default:
				}
				digest, err := h(candidate(data, nonce))
				if err != nil {
					return err
				}
				local++
				if strings.HasPrefix(digest, target) {
					mu.Lock()
					if !best.Found || nonce < best.Nonce {
						best = MiningResult{Found: true, Nonce: nonce, Digest: digest}
					}
					attempts += local
					mu.Unlock()
					closeOnce.Do(func() { close(done) })
					return nil
				}
			}
			mu.Lock()
			attempts += local
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MiningResult{}, err
	}

	best.Attempts = attempts
	best.Elapsed = time.Since(start)
	return best, nil
}

// candidate appends the decimal nonce to the base data without aliasing the
// caller's slice.
func candidate(data []byte, nonce uint64) []byte {
	buf := make([]byte, 0, len(data)+20)
	buf = append(buf, data...)
	return strconv.AppendUint(buf, nonce, 10)
}
