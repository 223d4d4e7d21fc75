package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a snapshot of the run used for the performance report
type Stats struct {
	Tool      string
	Outputs   int
	Elapsed   time.Duration
	RSS       uint64  // Resident memory of this process in bytes
	CPU       float64 // CPU percent of this process since start
	SystemMem float64 // Percent of system memory in use
}

// CollectStats samples process and system usage. Sampling failures leave
// the corresponding fields zero.
func CollectStats(tool string, outputs int, start time.Time) Stats {
	s := Stats{
		Tool:    tool,
		Outputs: outputs,
		Elapsed: time.Since(start),
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil {
			s.RSS = info.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			s.CPU = cpu
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.SystemMem = vm.UsedPercent
	}

	return s
}

// Report renders the human-readable performance report
func (s Stats) Report() string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Tool: %s\n"+
			"Outputs: %d\n"+
			"Total Time: %.3fs\n"+
			"Resident Memory: %.1f MiB\n"+
			"CPU: %.1f%%\n"+
			"System Memory Used: %.1f%%\n"+
			"----------------------------\n",
		s.Tool, s.Outputs, s.Elapsed.Seconds(), float64(s.RSS)/(1<<20), s.CPU, s.SystemMem,
	)
}

// AppendLog appends a one-line summary to the benchmark log at path
func (s Stats) AppendLog(path string) error {
	entry := fmt.Sprintf("[%s] Tool: %s | Outputs: %d | Total: %.3fs | RSS: %.1fMiB | CPU: %.1f%%\n",
		time.Now().Format("2006-01-02 15:04:05"),
		s.Tool,
		s.Outputs,
		s.Elapsed.Seconds(),
		float64(s.RSS)/(1<<20),
		s.CPU,
	)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(entry)
	return err
}
