// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package includes

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives a value in [0.0, 1.0], monotonically non-decreasing
// within one walk and always terminating with exactly 1.0.
type ProgressFunc func(float64)

// Walker runs the include graph traversals.
//
// A Walker is stateless between calls: the processed-file memo and the
// result accumulators live for the duration of one traversal only, so a
// single Walker is safe to reuse across repeated runs.
type Walker struct {
	logger  *slog.Logger
	workers int
}

// NewWalker creates a Walker. Workers below 2 give the sequential traversal;
// higher values fan quantiles out to that many goroutines with the shared
// memo and accumulators behind a mutex.
func NewWalker(logger *slog.Logger, workers int) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Walker{logger: logger, workers: workers}
}

// memo is the processed-file set shared across quantiles of one traversal.
// Keys are canonicalized absolute path strings.
type memo struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newMemo() *memo {
	return &memo{seen: make(map[string]struct{})}
}

func (m *memo) add(key string) {
	m.mu.Lock()
	m.seen[key] = struct{}{}
	m.mu.Unlock()
}

func (m *memo) has(key string) bool {
	m.mu.Lock()
	_, ok := m.seen[key]
	m.mu.Unlock()
	return ok
}

// walkQuantiles executes fn once per quantile index, reporting progress at
// quantile boundaries and a final 1.0.
//
// Sequentially, progress is i/n before quantile i. With a worker pool,
// progress is completed/n after each quantile finishes; both sequences are
// monotone. fn must confine all shared-state access to the memo and to the
// merge step it performs under its own lock.
func (w *Walker) walkQuantiles(n int, progress ProgressFunc, fn func(i int)) {
	if progress == nil {
		progress = func(float64) {}
	}

	if w.workers < 2 {
		for i := 0; i < n; i++ {
			progress(float64(i) / float64(n))
			fn(i)
		}
		progress(1.0)
		return
	}

	var (
		g         errgroup.Group
		mu        sync.Mutex
		completed int
	)
	g.SetLimit(w.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			mu.Lock()
			completed++
			if completed < n {
				progress(float64(completed) / float64(n))
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // quantile walks never fail
	progress(1.0)
}
