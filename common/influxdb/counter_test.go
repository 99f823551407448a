package influxdb_test

import (
	"sync"
	"testing"

	"github.com/bytearena/dogfight/common/influxdb"
	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	counter.Add(1)

	assert.Equal(t, 1, counter.GetAndReset())
	assert.Equal(t, 0, counter.GetAndReset())
	assert.Equal(t, 1, counter.GetTotal())
}

func TestConcurrentAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				counter.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, counter.GetAndReset())
	assert.Equal(t, 800, counter.GetTotal())
}
