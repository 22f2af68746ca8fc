// Copyright 2025 go-qsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hostinfo describes the machine a benchmark ran on.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo holds the host parameters printed with benchmark reports.
// Fields that could not be read hold an "[ERR:...]" marker or zero.
type HostInfo struct {
	GoVersion     string   `json:"go_version"`
	OS            string   `json:"os"`
	Arch          string   `json:"arch"`
	CPUModel      string   `json:"cpu_model"`
	CPUNumLogical int      `json:"cpu_logical"`
	// CPUMHz is the max frequency when cpufreq exposes it, otherwise the
	// current frequency of the first core.
	CPUMHz        int      `json:"cpu_mhz"`
	CPUFeatures   []string `json:"cpu_features"`
	MemoryBytes   uint64   `json:"memory_bytes"`
}

// Get collects the parameters of the current host.
func Get() *HostInfo {
	hi := &HostInfo{
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		CPUFeatures: cpuFeatures(),
	}

	applyCPUInfo(hi)
	applyMemInfo(hi)

	return hi
}

func applyCPUInfo(hi *HostInfo) {
	hi.CPUNumLogical = runtime.NumCPU()

	rawCPUInfo, err := cpu.Info()
	if err != nil {
		hi.CPUModel = fmt.Sprintf("[ERR:%s]", err)
		return
	}
	if len(rawCPUInfo) == 0 {
		hi.CPUModel = "[ERR:no logical cpus]"
		return
	}

	hi.CPUModel = strings.TrimSpace(rawCPUInfo[0].ModelName)
	hi.CPUMHz = int(rawCPUInfo[0].Mhz)
	if logical, err := cpu.Counts(true); err == nil && logical > 0 {
		hi.CPUNumLogical = logical
	}
}

func applyMemInfo(hi *HostInfo) {
	vms, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	hi.MemoryBytes = vms.Total
}

// String renders the host on one line, e.g.
// "go1.26 linux/amd64, Intel(R) Xeon(R) x8 @ 2400MHz, 16 GB [avx2 sse4.2]".
func (hi *HostInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s/%s", hi.GoVersion, hi.OS, hi.Arch)

	model := hi.CPUModel
	if model == "" {
		model = "unknown cpu"
	}
	fmt.Fprintf(&sb, ", %s x%d", model, hi.CPUNumLogical)
	if hi.CPUMHz > 0 {
		fmt.Fprintf(&sb, " @ %dMHz", hi.CPUMHz)
	}
	if hi.MemoryBytes > 0 {
		fmt.Fprintf(&sb, ", %s", humanize.Bytes(hi.MemoryBytes))
	}
	if len(hi.CPUFeatures) > 0 {
		fmt.Fprintf(&sb, " [%s]", strings.Join(hi.CPUFeatures, " "))
	}
	return sb.String()
}
