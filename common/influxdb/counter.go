package influxdb

import (
	"sync/atomic"
)

// Counter accumulates events between two metric reports.
type Counter struct {
	count int64
	total int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (counter *Counter) Add(nbr int) {
	atomic.AddInt64(&counter.count, int64(nbr))
	atomic.AddInt64(&counter.total, int64(nbr))
}

func (counter *Counter) GetAndReset() int {
	return int(atomic.SwapInt64(&counter.count, 0))
}

// GetTotal returns every event ever added, resets included.
func (counter *Counter) GetTotal() int {
	return int(atomic.LoadInt64(&counter.total))
}
