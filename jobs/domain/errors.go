package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit indica configuração inválida da barreira: o limite de
// concorrência precisa ser positivo. Nenhum pool nem goroutine é criado
// quando este erro acontece.
var ErrInvalidLimit = errors.New("jobs: limit must be > 0")

// WorkError associa a falha de uma unidade de trabalho ao job que a produziu.
//
// A falha original fica acessível via errors.Unwrap / errors.Is / errors.As.
type WorkError struct {
	JobID string
	Name  string
	Err   error
}

func (e *WorkError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("job %q (%s): %v", e.Name, e.JobID, e.Err)
	}
	return fmt.Sprintf("job %s: %v", e.JobID, e.Err)
}

func (e *WorkError) Unwrap() error { return e.Err }
