package jar

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostVectorHint names a SIMD extension the host CPU exposes. It is purely
// informational: unlike the reference implementation's AVX-512 intrinsics,
// [FMAVec16] is plain portable Go and runs identically regardless of what
// the host supports. The hint exists so internal/cpuinfo can report what a future hardware-backed vector path could target,
// mirroring the teacher's golang.org/x/sys/cpu-based reporting in
// internal/cpuinfo/main.go.
func HostVectorHint() string {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F:
			return "avx512"
		case cpu.X86.HasAVX2:
			return "avx2"
		case cpu.X86.HasSSE41:
			return "sse4.1"
		default:
			return "sse2"
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return "neon"
		}
		return "scalar"
	default:
		return "scalar"
	}
}
