// Package metrics provides runtime measurement helpers used by the verbose
// output paths.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta summarizes the change between two snapshots. HeapAlloc can shrink
// between readings when the GC runs, so the delta is reported as a signed
// value.
type Delta struct {
	HeapAllocBytes int64
	GCCycles       uint32
}

// DeltaSince computes the change from an earlier snapshot to this one.
func (s MemorySnapshot) DeltaSince(earlier MemorySnapshot) Delta {
	return Delta{
		HeapAllocBytes: int64(s.HeapAlloc) - int64(earlier.HeapAlloc),
		GCCycles:       s.NumGC - earlier.NumGC,
	}
}
