package core

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID parses the id of the calling goroutine from its stack header.
// Used by tests and the demo to tell execution contexts apart; never for control flow.
func GoroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		panic("core: cannot parse goroutine id: " + err.Error())
	}
	return id
}
