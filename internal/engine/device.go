package engine

import (
	"os"
	"runtime"
)

// Device is the placement resolved once at startup.
const (
	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// nvidiaDriverPath is checked for "auto" placement on linux.
var nvidiaDriverPath = "/proc/driver/nvidia/version"

// ResolveDevice maps a configured preference to a concrete device. "auto"
// selects cuda when an NVIDIA driver is visible, cpu otherwise. Unknown
// values fall back to cpu.
func ResolveDevice(pref string) string {
	switch pref {
	case DeviceCPU:
		return DeviceCPU
	case DeviceCUDA:
		return DeviceCUDA
	case "", "auto":
		if cudaVisible() {
			return DeviceCUDA
		}
		return DeviceCPU
	default:
		return DeviceCPU
	}
}

func cudaVisible() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	_, err := os.Stat(nvidiaDriverPath)
	return err == nil
}
