package impedance

import (
	"fmt"
	"sync"
)

// EvaluateAll evaluates every model on the same sweep and returns the
// curves in model order.
// When parallel is true, models are evaluated concurrently, one goroutine
// per model. Results are identical to sequential evaluation. On failure the
// error of the first failing model (by index) is returned.
func EvaluateAll(models []Model, sweep Sweep, parallel bool) ([]Curve, error) {
	curves := make([]Curve, len(models))

	// Sequential processing (default or when parallel disabled)
	if !parallel || len(models) < minParallelModels {
		for i, m := range models {
			c, err := m.Evaluate(sweep)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", m.Name(), err)
			}
			curves[i] = c
		}
		return curves, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(models))

	for i := range models {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			c, err := models[idx].Evaluate(sweep)
			if err != nil {
				errs[idx] = fmt.Errorf("model %s: %w", models[idx].Name(), err)
				return
			}
			curves[idx] = c
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return curves, nil
}
