// Package audiostore is the thread-safe key→decoded-audio mapping. It is a
// sharded map in the spirit of the teacher's SharedAudioBuffer: independent
// sync.RWMutex-guarded buckets so unrelated keys never contend on the same
// lock, generalized here from one buffer to N keyed entries.
package audiostore

import (
	"hash/fnv"
	"sync"

	"github.com/fans963/audioengine/apperror"
	"github.com/fans963/audioengine/types"
)

const shardCount = 32

type shard struct {
	mu   sync.RWMutex
	data map[string]types.Audio
}

// Store is a concurrent key→Audio map supporting many readers and
// occasional writers without global lock contention.
type Store struct {
	shards [shardCount]*shard
}

// New creates an empty audio store.
func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{data: make(map[string]types.Audio)}
	}
	return s
}

func (s *Store) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%shardCount]
}

// Save upserts the audio entry for key.
func (s *Store) Save(key string, audio types.Audio) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.data[key] = audio
}

// Load returns the audio entry for key, or a NotFound AppError.
func (s *Store) Load(key string) (types.Audio, error) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	a, ok := sh.data[key]
	if !ok {
		return types.Audio{}, apperror.NotFound("audio key not found: %s", key)
	}
	return a, nil
}

// Remove deletes the audio entry for key, or returns a NotFound AppError if
// it was absent.
func (s *Store) Remove(key string) error {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.data[key]; !ok {
		return apperror.NotFound("audio key not found for removal: %s", key)
	}
	delete(sh.data, key)
	return nil
}
