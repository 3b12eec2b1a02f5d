package gopenflow

import (
	"sync/atomic"
)

// Xids hands out transaction ids. The zero value starts at 1 and
// wraps back through 0 after 0xffffffff.
type Xids struct {
	last uint32
}

func (obj *Xids) Next() uint32 {
	return atomic.AddUint32(&obj.last, 1)
}
