package domain

import (
	"context"
	"time"
)

// Outcome é o desfecho de uma unidade de trabalho.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// StatsEvent representa o desfecho de um job lançado em segundo plano.
//
// Ele é propositalmente agnóstico de execução: Name é uma string genérica
// escolhida pelo caller (ex: "fetch", "backup").
//
// Observação: cuidado com cardinalidade (ex.: usar nomes dinâmicos sem controle
// pode explodir o número de chaves em uma base como Redis).
type StatsEvent struct {
	JobID   string
	Name    string
	Outcome Outcome

	At       time.Time
	Duration time.Duration
}

// StatsStore é a estratégia de persistência para estatísticas de jobs.
//
// Implementações podem armazenar em Redis, memória, etc.
// O launcher trata erro como best-effort (não derruba o job).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
