package monitor

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"

	"healthmonitor/internal/domain"
)

const (
	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

type MemoryReader interface {
	Read() domain.Memory
}

// RuntimeMemory reports Go heap usage in MB and host memory in GB.
type RuntimeMemory struct {
	logger *slog.Logger
}

func NewRuntimeMemory(logger *slog.Logger) *RuntimeMemory {
	return &RuntimeMemory{logger: logger}
}

func (r *RuntimeMemory) Read() domain.Memory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	m := domain.Memory{
		Used:  roundDiv(ms.HeapAlloc, bytesPerMB),
		Total: roundDiv(ms.HeapSys, bytesPerMB),
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		r.logger.Warn("failed to read host memory", slog.String("error", err.Error()))
		return m
	}
	m.System = roundDiv(vm.Total, bytesPerGB)
	m.Free = roundDiv(vm.Available, bytesPerGB)
	return m
}

func roundDiv(v, unit uint64) uint64 {
	return uint64(math.Round(float64(v) / float64(unit)))
}
