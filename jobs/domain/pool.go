package domain

import "context"

// SlotPool representa um recurso com capacidade finita (ex: jobs concorrentes).
//
// A semântica é: Acquire bloqueia até conseguir uma vaga ou até o ctx encerrar.
// Ao adquirir, retorna uma função de release que deve ser chamada exatamente uma vez.
//
// Available e Capacity são leituras sem bloqueio, úteis para observabilidade e
// testes; o valor de Available pode ficar obsoleto no instante em que é lido.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
	Available() int
	Capacity() int
}
