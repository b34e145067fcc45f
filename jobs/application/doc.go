// Package application contém os casos de uso (regras de aplicação) para o
// lançamento de jobs em segundo plano.
//
// Ele depende apenas do pacote domain e não conhece goroutines nem futures.
// Ex.: LaunchService.Acquire(ctx) aplica ritmo de lançamento + aquisição de vaga.
package application
