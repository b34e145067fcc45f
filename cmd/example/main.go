package main

import (
	"context"
	"log"
	"time"

	"background-jobs/jobs"
)

func main() {
	// Exemplo: um script majoritariamente sequencial que sobrepõe dois passos
	// lentos e independentes, sem montar infraestrutura paralela genérica.
	ctx := context.Background()

	total, err := jobs.Run(jobs.Options{Limit: 2}, func(l *jobs.Launcher) int {
		backup := jobs.Go(l, ctx, "backup", func(ctx context.Context) (int, error) {
			time.Sleep(300 * time.Millisecond) // simula um subprocesso demorado
			return 12, nil
		})
		relatorio := jobs.Go(l, ctx, "relatorio", func(ctx context.Context) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 30, nil
		})

		// trabalho sequencial normal enquanto os dois rodam ao fundo
		log.Printf("main: seguindo o fluxo enquanto os jobs rodam")

		b, _ := backup.Wait()
		r, _ := relatorio.Wait()
		return b + r
	})
	if err != nil {
		log.Fatalf("job error: %v", err)
	}

	log.Printf("total: %d", total)
}
