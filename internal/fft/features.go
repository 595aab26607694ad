package fft

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities of the running process.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

func (f Features) String() string {
	return fmt.Sprintf("%s avx2=%t avx512=%t fma=%t sse2=%t neon=%t",
		f.Architecture, f.HasAVX2, f.HasAVX512, f.HasFMA, f.HasSSE2, f.HasNEON)
}
