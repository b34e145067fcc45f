package infra

import (
	"context"

	"background-jobs/jobs/domain"
)

type chanPool struct {
	sem chan struct{}
}

// NewChanPool cria um pool simples baseado em channel com capacidade `max`.
// `max` deve ser positivo; a validação fica com quem monta a barreira.
func NewChanPool(max int) domain.SlotPool {
	return &chanPool{sem: make(chan struct{}, max)}
}

func (p *chanPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}

func (p *chanPool) Available() int { return cap(p.sem) - len(p.sem) }

func (p *chanPool) Capacity() int { return cap(p.sem) }
