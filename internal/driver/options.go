package driver

import (
	"fmt"

	"fortio.org/safecast"

	"aera/internal/observ"
)

// Options configures the per-file pipeline.
type Options struct {
	// MaxDiagnostics ограничивает число диагностик на файл; 0: без лимита.
	MaxDiagnostics int
	// Jobs: число воркеров для *Files; <= 0 означает GOMAXPROCS.
	Jobs int
	// Cache is consulted by DiagnoseFiles only; nil disables it.
	Cache *DiskCache
	// Timer receives one lex and one parse phase per call when set.
	Timer    *observ.Timer
	Progress ProgressSink
}

func (o Options) maxErrors() uint {
	if o.MaxDiagnostics <= 0 {
		return 0
	}
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}
	return n
}

func (o Options) track(name string) func(note string) {
	if o.Timer == nil {
		return func(string) {}
	}
	return o.Timer.Track(name)
}
