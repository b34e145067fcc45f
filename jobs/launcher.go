package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"background-jobs/jobs/application"
	"background-jobs/jobs/domain"

	"github.com/google/uuid"
)

// Launcher é o handle entregue à lógica do caller dentro de Run.
// Ele carrega o serviço de admissão, o contador de drain e o coletor de falhas.
type Launcher struct {
	svc application.LaunchService
	wg  sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

func (l *Launcher) collect(err error) {
	l.mu.Lock()
	l.errs = append(l.errs, err)
	l.mu.Unlock()
}

// collected só pode ser lida depois de wg.Wait (sem corrida com collect).
func (l *Launcher) collected() []error {
	return l.errs
}

// Go lança work em uma goroutine respeitando o limite de vagas da barreira.
//
// A aquisição da vaga acontece de forma síncrona, na goroutine chamadora, antes
// de criar qualquer goroutine: quem lança mais rápido do que conclui bloqueia
// aqui, e a barreira nunca enxerga "zero jobs pendentes" com um acquire em voo.
//
// O ctx é capturado por valor no momento da chamada e entregue ao work; é o
// snapshot de estado ambiente que o job enxerga (ctx é imutável em Go, então
// rebinds posteriores no caller não afetam o job).
//
// O retorno é imediato (não espera o job): um Future que o caller pode ler,
// guardar ou descartar. A vaga é devolvida exatamente uma vez, via defer,
// mesmo se work falhar ou entrar em pânico. Falhas resolvem o Future com erro
// e são agregadas no erro retornado por Run.
func Go[T any](l *Launcher, ctx context.Context, name string, work func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	id := uuid.NewString()

	release, ok := l.svc.Acquire(ctx)
	if !ok {
		// ctx encerrou durante a espera por vaga: o job nunca chega a rodar.
		var zero T
		werr := &domain.WorkError{JobID: id, Name: name, Err: ctx.Err()}
		l.collect(werr)
		f.resolve(zero, werr)
		return f
	}

	l.wg.Add(1)
	go func() {
		started := time.Now()

		var (
			v   T
			err error
		)
		defer func() {
			if rvr := recover(); rvr != nil {
				err = fmt.Errorf("panic: %v", rvr)
			}

			outcome := domain.OutcomeSucceeded
			if err != nil {
				outcome = domain.OutcomeFailed
				werr := &domain.WorkError{JobID: id, Name: name, Err: err}
				l.collect(werr)
				f.resolve(v, werr)
			} else {
				f.resolve(v, nil)
			}

			l.svc.Record(ctx, domain.StatsEvent{
				JobID:    id,
				Name:     name,
				Outcome:  outcome,
				At:       started,
				Duration: time.Since(started),
			})

			release()
			l.wg.Done()
		}()

		v, err = work(ctx)
	}()

	return f
}
