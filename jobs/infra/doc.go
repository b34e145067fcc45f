// Package infra contém implementações concretas (infraestrutura) para os
// contratos definidos no pacote domain.
//
// Exemplos:
//   - ChanPool: semáforo simples baseado em channel para limite de concorrência
//   - WeightedPool: mesmo contrato sobre golang.org/x/sync/semaphore
//   - MemoryStatsStore / RedisStatsStore: persistência de estatísticas de jobs
package infra
