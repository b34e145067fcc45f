package application

import (
	"context"

	"background-jobs/jobs/domain"

	"golang.org/x/time/rate"
)

// LaunchService concentra a regra de admissão de um novo job: ritmo de
// lançamento (token bucket) seguido da aquisição de vaga no pool,
// sem saber nada sobre goroutines ou futures.
type LaunchService struct {
	Pool     domain.SlotPool
	Throttle *rate.Limiter
	Stats    domain.StatsStore
}

// Acquire tenta admitir um novo job.
//   - Primeiro espera o token bucket (se configurado), para não segurar uma vaga
//     enquanto aguarda ritmo.
//   - Depois adquire a vaga no pool (se houver pool).
//
// Retorna (release, ok). Se ok=false, nenhuma vaga foi adquirida e o job não
// deve rodar; isso só acontece quando o ctx encerra durante a espera.
func (s LaunchService) Acquire(ctx context.Context) (func(), bool) {
	if s.Throttle != nil {
		if err := s.Throttle.Wait(ctx); err != nil {
			return nil, false
		}
	}

	if s.Pool == nil {
		return func() {}, true
	}
	return s.Pool.Acquire(ctx)
}

// Record registra o desfecho de um job. Best-effort: erro do store é ignorado
// para nunca derrubar o fluxo de execução.
func (s LaunchService) Record(ctx context.Context, ev domain.StatsEvent) {
	if s.Stats == nil {
		return
	}
	_ = s.Stats.Record(ctx, ev)
}
