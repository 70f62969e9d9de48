// File: api/control.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Introspection contract: components expose counters as a flat map.

package api

// StatsSource is implemented by components that expose runtime counters.
// Snapshots are point-in-time and internally consistent per key only.
type StatsSource interface {
	Stats() map[string]int64
}
