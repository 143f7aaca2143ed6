package gls

import "runtime"

// goid returns the id of the calling goroutine.
//
// The runtime does not expose goroutine ids, but it prints one in the
// header of every stack dump ("goroutine 42 [running]:"), so the id is
// recovered by formatting a one-goroutine dump and parsing the header.
// The compiler intrinsic runtime.getg would be cheaper but is not
// reachable from portable code.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[len(prefix):n]
	var id uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

const prefix = "goroutine "
