package infra

import (
	"context"
	"sync/atomic"

	"background-jobs/jobs/domain"

	"golang.org/x/sync/semaphore"
)

type weightedPool struct {
	sem *semaphore.Weighted
	cap int64
	// held conta vagas ocupadas; semaphore.Weighted não expõe o saldo.
	held atomic.Int64
}

// NewWeightedPool cria um pool com o mesmo contrato do ChanPool, porém
// implementado sobre golang.org/x/sync/semaphore. Útil quando o chamador já
// usa x/sync ou quer a fila FIFO do Weighted sob contenção.
func NewWeightedPool(max int) domain.SlotPool {
	return &weightedPool{sem: semaphore.NewWeighted(int64(max)), cap: int64(max)}
}

func (p *weightedPool) Acquire(ctx context.Context) (func(), bool) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, false
	}
	p.held.Add(1)
	return func() {
		p.held.Add(-1)
		p.sem.Release(1)
	}, true
}

func (p *weightedPool) Available() int { return int(p.cap - p.held.Load()) }

func (p *weightedPool) Capacity() int { return int(p.cap) }
