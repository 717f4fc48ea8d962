package drivers

import (
	"context"
	"sync"

	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/aoc2019/syncs"
)

type SweepResult struct {
	Input   string
	Outcome intcode.Outcome
	Output  []int64
	Err     error
}

// Sweep runs an independent clone of a machine for every input batch, concurrently.
// Each clone is resumed until it halts, fails, or needs input not in its batch.
// Results are in the order of batches; the machine itself is not modified.
type Sweep func(ctx context.Context, m *intcode.Machine, batches []string) ([]SweepResult, error)

func (Module) Sweep(
	workers machineconfigs.Workers,
	newSession logs.NewSession,
	logger logs.Logger,
) Sweep {
	return func(ctx context.Context, m *intcode.Machine, batches []string) ([]SweepResult, error) {
		ctx, _ = newSession(ctx, "sweep")
		sem := syncs.NewSemaphore(int(workers))
		results := make([]SweepResult, len(batches))
		var wg sync.WaitGroup

		for i, batch := range batches {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				return nil, err
			}
			clone := m.Clone()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				result := &results[i]
				result.Input = batch
				for outcome, err := range clone.Events(batch, nil) {
					result.Outcome = outcome
					if err != nil {
						result.Err = logs.WrapSession(ctx, err)
					}
				}
				result.Output = clone.Output()
				logger.DebugContext(ctx, "sweep run",
					"input", batch,
					"outcome", result.Outcome.String(),
					"outputs", len(result.Output),
				)
			}()
		}

		wg.Wait()
		return results, nil
	}
}
