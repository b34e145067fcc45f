package infra

import (
	"context"
	"sync"

	"background-jobs/jobs/domain"
)

type Counters struct {
	Succeeded int64
	Failed    int64
}

// MemoryStatsStore é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Não faz expiração e não é indicada para produção.
type MemoryStatsStore struct {
	mu     sync.Mutex
	total  Counters
	byName map[string]Counters

	trackNames bool
}

type MemoryStatsOption func(*MemoryStatsStore)

func WithTrackNames(track bool) MemoryStatsOption {
	return func(s *MemoryStatsStore) { s.trackNames = track }
}

func NewMemoryStatsStore(opts ...MemoryStatsOption) *MemoryStatsStore {
	s := &MemoryStatsStore{
		byName: make(map[string]Counters),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Outcome == domain.OutcomeSucceeded {
		s.total.Succeeded++
	} else {
		s.total.Failed++
	}

	if s.trackNames && ev.Name != "" {
		c := s.byName[ev.Name]
		if ev.Outcome == domain.OutcomeSucceeded {
			c.Succeeded++
		} else {
			c.Failed++
		}
		s.byName[ev.Name] = c
	}
	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) ByName() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byName))
	for k, v := range s.byName {
		out[k] = v
	}
	return out
}
