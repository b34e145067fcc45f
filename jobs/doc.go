// Package jobs fornece um lançador de jobs em segundo plano com limite de
// concorrência, futures e barreira de conclusão.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de goroutines/infra)
//   - application: casos de uso (admissão: ritmo de lançamento + vaga) sem goroutines
//   - infra: implementações concretas (semáforo por channel, x/sync, stats em Redis/memória)
//   - jobs (este pacote): API pública — barreira, launcher, futures
//
// Fluxo típico:
//
//	sum, err := jobs.Run(jobs.Options{Limit: 2}, func(l *jobs.Launcher) int {
//	    a := jobs.Go(l, ctx, "passo-a", slowStepA)
//	    b := jobs.Go(l, ctx, "passo-b", slowStepB)
//	    // ... trabalho sequencial enquanto os passos rodam ...
//	    va, _ := a.Wait()
//	    vb, _ := b.Wait()
//	    return va + vb
//	})
//
// Garantias:
//
//  1. Nunca há mais de Limit jobs entre acquire e release ao mesmo tempo;
//     quem lança mais rápido do que conclui bloqueia na própria chamada Go.
//  2. Run só retorna depois que todos os jobs lançados terminaram (drain).
//  3. Falha de um job nunca é engolida: ela resolve o Future com erro e é
//     agregada no erro retornado por Run (errors.Join), uma notificação por job.
//
// Variáveis de ambiente do binário runner (cmd/runner) controlam o comportamento,
// como JOBS_LIMIT, JOBS_LAUNCH_RPS e JOBS_STATS_REDIS_ADDR.
package jobs
