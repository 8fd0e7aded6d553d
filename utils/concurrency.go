package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) over a fixed number of goroutines.
// routines <= 0 picks a count based on available CPUs. The first error stops all routines.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()-routines, 4)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	var counter atomic.Uint64
	var failed atomic.Bool

	if init != nil {
		for routineIndex := 0; routineIndex < routines; routineIndex++ {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var eg errgroup.Group

	for routineIndex := 0; routineIndex < routines; routineIndex++ {
		innerRoutineIndex := routineIndex
		eg.Go(func() error {
			for !failed.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, innerRoutineIndex); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

// ParallelMap applies f to every entry of in, keeping input order in the result
func ParallelMap[T, R any](routines int, in []T, f func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	err := SplitWork(routines, uint64(len(in)), func(workIndex uint64, _ int) (err error) {
		out[workIndex], err = f(in[workIndex])
		return err
	}, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}
