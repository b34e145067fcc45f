package jobs

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"background-jobs/jobs/domain"
	"background-jobs/jobs/infra"
)

func TestRun_InvalidLimitFailsWithoutInvokingLogic(t *testing.T) {
	for _, limit := range []int{0, -1} {
		calls := 0
		_, err := Run(Options{Limit: limit}, func(l *Launcher) struct{} {
			calls++
			return struct{}{}
		})
		if !errors.Is(err, domain.ErrInvalidLimit) {
			t.Fatalf("limit=%d: expected ErrInvalidLimit, got %v", limit, err)
		}
		if calls != 0 {
			t.Fatalf("limit=%d: expected logic not to run, ran %d times", limit, calls)
		}
	}
}

func TestRun_NeverExceedsLimit(t *testing.T) {
	const limit = 3
	const total = 20

	var (
		mu      sync.Mutex
		inUse   int
		maxSeen int
	)

	_, err := Run(Options{Limit: limit}, func(l *Launcher) struct{} {
		for i := 0; i < total; i++ {
			Go(l, context.Background(), "load", func(ctx context.Context) (int, error) {
				mu.Lock()
				inUse++
				if inUse > maxSeen {
					maxSeen = inUse
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inUse--
				mu.Unlock()
				return 0, nil
			})
		}
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if maxSeen > limit {
		t.Fatalf("expected at most %d concurrent jobs, saw %d", limit, maxSeen)
	}
	if maxSeen == 0 {
		t.Fatalf("expected jobs to actually run")
	}
}

func TestRun_ReturnsLogicResultAndDistinctValues(t *testing.T) {
	const k = 8

	futures := make([]*Future[int], 0, k)
	r, err := Run(Options{Limit: 2}, func(l *Launcher) string {
		for i := 0; i < k; i++ {
			i := i
			futures = append(futures, Go(l, context.Background(), "value", func(ctx context.Context) (int, error) {
				return i, nil
			}))
		}
		return "done"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != "done" {
		t.Fatalf("expected logic result %q, got %q", "done", r)
	}

	// futures continuam legíveis depois que Run retornou
	got := make([]int, 0, k)
	for _, f := range futures {
		v, ferr := f.Wait()
		if ferr != nil {
			t.Fatalf("unexpected future error: %v", ferr)
		}
		got = append(got, v)
	}
	sort.Ints(got)
	for i := 0; i < k; i++ {
		if got[i] != i {
			t.Fatalf("expected values 0..%d, got %v", k-1, got)
		}
	}
}

func TestRun_DoesNotReturnBeforeJobsFinish(t *testing.T) {
	const d = 50 * time.Millisecond

	start := time.Now()
	_, err := Run(Options{Limit: 1}, func(l *Launcher) struct{} {
		Go(l, context.Background(), "sleep", func(ctx context.Context) (struct{}, error) {
			time.Sleep(d)
			return struct{}{}, nil
		})
		// a lógica retorna na hora; Run deve segurar até o job terminar
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < d {
		t.Fatalf("expected Run to take at least %s, took %s", d, elapsed)
	}
}

func TestRun_FailureSurfacesAndDrainCompletes(t *testing.T) {
	boom := errors.New("boom")

	var failed *Future[int]
	_, err := Run(Options{Limit: 2}, func(l *Launcher) struct{} {
		failed = Go(l, context.Background(), "bad", func(ctx context.Context) (int, error) {
			return 0, boom
		})
		Go(l, context.Background(), "good", func(ctx context.Context) (int, error) {
			time.Sleep(5 * time.Millisecond)
			return 1, nil
		})
		return struct{}{}
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected Run error to wrap the work failure, got %v", err)
	}

	var werr *domain.WorkError
	if !errors.As(err, &werr) {
		t.Fatalf("expected a *domain.WorkError in the chain, got %v", err)
	}
	if werr.Name != "bad" {
		t.Fatalf("expected failure attributed to job %q, got %q", "bad", werr.Name)
	}
	if werr.JobID == "" {
		t.Fatalf("expected failure to carry a job id")
	}

	// o future do job que falhou resolve com o erro, não bloqueia para sempre
	_, ferr := failed.Wait()
	if !errors.Is(ferr, boom) {
		t.Fatalf("expected future error to wrap the work failure, got %v", ferr)
	}
}

func TestRun_ExactlyOneFailurePerFailingJob(t *testing.T) {
	boom := errors.New("boom")

	_, err := Run(Options{Limit: 2}, func(l *Launcher) struct{} {
		for i := 0; i < 3; i++ {
			Go(l, context.Background(), "bad", func(ctx context.Context) (int, error) {
				return 0, boom
			})
		}
		return struct{}{}
	})
	if err == nil {
		t.Fatalf("expected error")
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected a joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Fatalf("expected 3 failure notifications, got %d", n)
	}
}

func TestRun_InjectedPoolIsUsed(t *testing.T) {
	pool := infra.NewWeightedPool(1)

	_, err := Run(Options{Pool: pool}, func(l *Launcher) struct{} {
		Go(l, context.Background(), "ok", func(ctx context.Context) (int, error) {
			return 7, nil
		})
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Available() != pool.Capacity() {
		t.Fatalf("expected pool back to full capacity after drain, available=%d capacity=%d",
			pool.Available(), pool.Capacity())
	}
}

func TestRun_RecordsStatsPerJob(t *testing.T) {
	stats := infra.NewMemoryStatsStore(infra.WithTrackNames(true))

	_, _ = Run(Options{Limit: 2, Stats: stats}, func(l *Launcher) struct{} {
		Go(l, context.Background(), "ok", func(ctx context.Context) (int, error) {
			return 1, nil
		})
		Go(l, context.Background(), "bad", func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		})
		return struct{}{}
	})

	total := stats.Total()
	if total.Succeeded != 1 || total.Failed != 1 {
		t.Fatalf("expected 1 succeeded and 1 failed, got %+v", total)
	}
	byName := stats.ByName()
	if byName["ok"].Succeeded != 1 {
		t.Fatalf("expected job %q recorded as succeeded, got %+v", "ok", byName["ok"])
	}
	if byName["bad"].Failed != 1 {
		t.Fatalf("expected job %q recorded as failed, got %+v", "bad", byName["bad"])
	}
}
