package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// DefaultNumWorkers returns the number of logical CPUs, falling back to
// runtime.NumCPU when the host cannot be queried
func DefaultNumWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}

// SystemInfo describes the machine a render runs on
type SystemInfo struct {
	CPUModel     string
	LogicalCores int
	ClockGHz     float64
	TotalRAMGB   uint64
}

// GetSystemInfo queries the CPU model and installed memory
func GetSystemInfo() (SystemInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to query CPU info: %w", err)
	}
	if len(cpuInfo) == 0 {
		return SystemInfo{}, fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to query memory info: %w", err)
	}

	return SystemInfo{
		CPUModel:     cpuInfo[0].ModelName,
		LogicalCores: DefaultNumWorkers(),
		ClockGHz:     cpuInfo[0].Mhz / 1000,
		TotalRAMGB:   memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}

func (si SystemInfo) String() string {
	return fmt.Sprintf("%s, %d logical cores @ %.2f GHz, %d GB RAM",
		si.CPUModel, si.LogicalCores, si.ClockGHz, si.TotalRAMGB)
}
