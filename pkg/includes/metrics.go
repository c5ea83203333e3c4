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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsIncludes holds Prometheus metrics for the include engine.
type metricsIncludes struct {
	once sync.Once

	// Extraction
	filesScanned        prometheus.Counter
	directivesExtracted prometheus.Counter

	// Resolution
	directivesResolved   prometheus.Counter
	directivesUnresolved prometheus.Counter

	// Discovery
	searchDirsDiscovered prometheus.Counter

	// Durations
	discoverDuration   prometheus.Histogram
	unresolvedDuration prometheus.Histogram
}

var incMetrics metricsIncludes

func (m *metricsIncludes) init() {
	m.once.Do(func() {
		m.filesScanned = prometheus.NewCounter(prometheus.CounterOpts{Name: "cxxinc_files_scanned_total", Help: "Files scanned for include directives"})
		m.directivesExtracted = prometheus.NewCounter(prometheus.CounterOpts{Name: "cxxinc_directives_extracted_total", Help: "Include directives extracted"})

		m.directivesResolved = prometheus.NewCounter(prometheus.CounterOpts{Name: "cxxinc_directives_resolved_total", Help: "Include directives resolved to an existing file"})
		m.directivesUnresolved = prometheus.NewCounter(prometheus.CounterOpts{Name: "cxxinc_directives_unresolved_total", Help: "Include directives that resolved nowhere"})

		m.searchDirsDiscovered = prometheus.NewCounter(prometheus.CounterOpts{Name: "cxxinc_search_dirs_discovered_total", Help: "Header search directories inferred from directory snapshots"})

		buckets := []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
		m.discoverDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "cxxinc_discover_seconds", Help: "Duration of header search directory discovery", Buckets: buckets})
		m.unresolvedDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "cxxinc_unresolved_seconds", Help: "Duration of unresolved directive collection", Buckets: buckets})

		prometheus.MustRegister(
			m.filesScanned, m.directivesExtracted,
			m.directivesResolved, m.directivesUnresolved,
			m.searchDirsDiscovered,
			m.discoverDuration, m.unresolvedDuration,
		)
	})
}

// record helpers - used by the extractor and walkers
func recordFileScanned() { incMetrics.init(); incMetrics.filesScanned.Inc() }
func recordDirectivesExtracted(n int) {
	incMetrics.init()
	incMetrics.directivesExtracted.Add(float64(n))
}
func recordDirectiveResolved()   { incMetrics.init(); incMetrics.directivesResolved.Inc() }
func recordDirectiveUnresolved() { incMetrics.init(); incMetrics.directivesUnresolved.Inc() }
func recordSearchDirectoryDiscovered() {
	incMetrics.init()
	incMetrics.searchDirsDiscovered.Inc()
}
func observeDiscoverDuration(d time.Duration) {
	incMetrics.init()
	incMetrics.discoverDuration.Observe(d.Seconds())
}
func observeUnresolvedDuration(d time.Duration) {
	incMetrics.init()
	incMetrics.unresolvedDuration.Observe(d.Seconds())
}
