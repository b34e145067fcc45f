package jobs

import (
	"errors"
	"fmt"

	"background-jobs/jobs/application"
	"background-jobs/jobs/domain"
	"background-jobs/jobs/infra"

	"golang.org/x/time/rate"
)

type Options struct {
	// Limit é o número máximo de jobs simultâneos. Obrigatório (> 0),
	// a menos que um Pool seja injetado.
	Limit int

	// Pool permite injetar outra implementação de vaga (ex: infra.NewWeightedPool).
	// Se nil, um pool padrão baseado em channel é criado com capacidade Limit.
	Pool domain.SlotPool

	// LaunchRPS/LaunchBurst limitam o ritmo de lançamento de jobs (token bucket),
	// independente do limite de concorrência. 0 desativa.
	LaunchRPS   float64
	LaunchBurst int

	// Stats, se definido, recebe um evento por job concluído (best-effort).
	Stats domain.StatsStore
}

// Run abre uma barreira de conclusão: cria o pool de vagas, entrega um
// Launcher para fn e, quando fn retorna, espera (drain) até que todos os jobs
// lançados tenham terminado — com sucesso ou falha.
//
// Retorna o resultado de fn e as falhas de jobs agregadas via errors.Join
// (nil se nenhum job falhou). Os Futures obtidos dentro de fn continuam
// válidos e legíveis depois do retorno.
//
// Limit inválido retorna domain.ErrInvalidLimit sem invocar fn.
func Run[R any](opts Options, fn func(l *Launcher) R) (R, error) {
	var zero R

	pool := opts.Pool
	if pool == nil {
		if opts.Limit <= 0 {
			return zero, fmt.Errorf("%w (got %d)", domain.ErrInvalidLimit, opts.Limit)
		}
		pool = infra.NewChanPool(opts.Limit)
	}

	var throttle *rate.Limiter
	if opts.LaunchRPS > 0 {
		burst := opts.LaunchBurst
		if burst <= 0 {
			burst = 1
		}
		throttle = rate.NewLimiter(rate.Limit(opts.LaunchRPS), burst)
	}

	l := &Launcher{
		svc: application.LaunchService{
			Pool:     pool,
			Throttle: throttle,
			Stats:    opts.Stats,
		},
	}

	r := fn(l)

	// Drain: equivalente funcional de re-checar o semáforo até voltar à
	// capacidade plena, sem busy-poll.
	l.wg.Wait()

	return r, errors.Join(l.collected()...)
}
