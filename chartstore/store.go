// Package chartstore is the thread-safe key→charts cache: at most one chart
// per (key, data_type). Sharded the same way as audiostore so republish-all
// snapshots don't serialize against unrelated writers.
package chartstore

import (
	"hash/fnv"
	"sync"

	"github.com/fans963/audioengine/apperror"
	"github.com/fans963/audioengine/publisher"
	"github.com/fans963/audioengine/types"
)

const shardCount = 32

type shard struct {
	mu   sync.RWMutex
	data map[string][]types.Chart
}

// Entry pairs a cache key with one of its charts, as returned by GetAll.
type Entry struct {
	Key   string
	Chart types.Chart
}

// Store is the chart cache. It reports its own mutations on the
// process-wide cache event sink (observability only).
type Store struct {
	shards [shardCount]*shard
	cache  *publisher.CachePublisher
}

// New creates an empty chart store.
func New() *Store {
	s := &Store{cache: publisher.NewCachePublisher()}
	for i := range s.shards {
		s.shards[i] = &shard{data: make(map[string][]types.Chart)}
	}
	return s
}

func (s *Store) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%shardCount]
}

// Add inserts chart under key, replacing any existing chart with the same
// DataType. A key never holds two charts of the same DataType.
func (s *Store) Add(key string, chart types.Chart) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	charts := sh.data[key]
	replaced := false
	for i, c := range charts {
		if c.Type == chart.Type {
			charts[i] = chart
			replaced = true
			break
		}
	}
	if !replaced {
		charts = append(charts, chart)
	}
	sh.data[key] = charts
	sh.mu.Unlock()

	s.cache.ChartUpdated(key, chart)
}

// Get returns the chart of dataType cached under key, or a NotFound
// AppError.
func (s *Store) Get(key string, dataType types.DataType) (types.Chart, error) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	for _, c := range sh.data[key] {
		if c.Type == dataType {
			return c, nil
		}
	}
	return types.Chart{}, apperror.NotFound("chart not found for key %q, type %q", key, dataType)
}

// GetAll returns a snapshot of every cached (key, chart) pair. The
// snapshot is consistent per shard but not across shards: a concurrent Add
// landing in a shard not yet visited, or already visited, may or may not
// appear. This mirrors the concurrent-map semantics spec.md calls for.
func (s *Store) GetAll() []Entry {
	var out []Entry
	for _, sh := range s.shards {
		sh.mu.RLock()
		for key, charts := range sh.data {
			for _, c := range charts {
				out = append(out, Entry{Key: key, Chart: c})
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// Remove deletes the chart of dataType cached under key, or returns a
// NotFound AppError if it was absent.
func (s *Store) Remove(key string, dataType types.DataType) error {
	sh := s.shardFor(key)
	sh.mu.Lock()
	charts := sh.data[key]
	idx := -1
	for i, c := range charts {
		if c.Type == dataType {
			idx = i
			break
		}
	}
	if idx == -1 {
		sh.mu.Unlock()
		return apperror.NotFound("chart not found for key %q, type %q", key, dataType)
	}
	sh.data[key] = append(charts[:idx], charts[idx+1:]...)
	sh.mu.Unlock()

	s.cache.ChartRemoved(key, dataType)
	return nil
}

// RemoveAllFor cascades the removal of every chart cached under key, used
// when the backing audio entry is removed.
func (s *Store) RemoveAllFor(key string) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	charts := sh.data[key]
	delete(sh.data, key)
	sh.mu.Unlock()

	for _, c := range charts {
		s.cache.ChartRemoved(key, c.Type)
	}
}
