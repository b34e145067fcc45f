package jobs

// Future guarda o resultado único de um job em segundo plano.
//
// Escrita única (feita pelo launcher); leituras antes da escrita bloqueiam.
// Depois de resolvido, Wait é idempotente: sempre retorna o mesmo par (valor, erro).
// Um job que falha resolve o Future com o erro — o leitor nunca fica preso
// esperando um resultado que não virá.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve escreve o resultado e libera os leitores. Deve ser chamada exatamente
// uma vez; o único escritor é a goroutine criada pelo launcher.
func (f *Future[T]) resolve(v T, err error) {
	f.val = v
	f.err = err
	close(f.done)
}

// Done permite usar o Future em um select, junto com outros channels.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait bloqueia até o job terminar e retorna o valor produzido ou a falha.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}
