package service

import (
	"sync"
	"testing"

	"vocabflash/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_RecordHit(t *testing.T) {
	service := NewStatsService(testutil.NewTestLogger())

	assert.Equal(t, uint64(0), service.Hits())
	assert.Equal(t, uint64(1), service.RecordHit())
	assert.Equal(t, uint64(2), service.RecordHit())
	assert.Equal(t, uint64(2), service.Hits())
}

func TestStatsService_ConcurrentHits(t *testing.T) {
	service := NewStatsService(testutil.NewTestLogger())

	const workers, perWorker = 8, 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				service.RecordHit()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*perWorker), service.Hits())
}
