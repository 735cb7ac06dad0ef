// Package hardware caches the CPU feature bits the rest of the engine
// dispatches on. It is the only process-wide mutable state in the module;
// the snapshot is taken once, atomically, at first use.
package hardware

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Snapshot is a point-in-time read of the capability bits block ciphers and
// modes care about when deciding whether a hardware-assisted lane is
// available.
type Snapshot struct {
	// AESNI reports whether the CPU has AES instruction support, the
	// precondition block.RHX checks before reporting a hardware-backed
	// name from Cipher.Name.
	AESNI bool
	// AVX2 reports AVX2 support, which block.SHX checks before reporting a
	// hardware-suffixed name from Cipher.Name.
	AVX2 bool
}

var (
	once     sync.Once
	snapshot Snapshot
)

// Current returns the cached CPU capability snapshot, computing it on the
// first call and reusing it for the lifetime of the process.
func Current() Snapshot {
	once.Do(func() {
		snapshot = Snapshot{
			AESNI: cpu.X86.HasAES,
			AVX2:  cpu.X86.HasAVX2,
		}
	})
	return snapshot
}
