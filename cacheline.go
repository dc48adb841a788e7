package hashset

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used to pad hot structures (the shards of the
// striped size counter) so that independent instances never share a
// cache line.
// It is automatically calculated using the golang.org/x/sys package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
