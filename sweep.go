package main

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"brightpix/frame"
	"brightpix/topk"
)

func SweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check the selector against a full sort for every input size up to side*side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep()
		},
	}
	addSweepFlags(cmd.Flags())
	return cmd
}

func runSweep() error {
	total := FlagSide * FlagSide
	if total < 1 {
		return errors.Errorf("sweep: invalid --side %d", FlagSide)
	}
	if FlagWorkers < 1 {
		FlagWorkers = 1
	}
	slog.Info("sweep start", "cases", total, "k", FlagTopK, "workers", FlagWorkers)

	cases := make(chan int)
	var (
		mu    sync.Mutex
		fails []error
	)
	runWorkers(FlagWorkers, func() {
		for n := range cases {
			err := checkCase(n, FlagTopK, frame.Pixel(FlagMaxValue), FlagSeed+int64(n))
			if err == nil {
				continue
			}
			mu.Lock()
			fails = append(fails, err)
			mu.Unlock()
		}
	}, func() {
		for n := 1; n <= total; n++ {
			cases <- n
		}
		close(cases)
	})

	if len(fails) > 0 {
		for _, err := range fails {
			slog.Error("sweep case failed", "err", err)
		}
		return errors.Errorf("sweep: %d of %d cases failed", len(fails), total)
	}
	slog.Info("sweep passed", "cases", total)
	return nil
}

// checkCase runs one selection over n random values and compares the
// drained values against the brute-force oracle.
func checkCase(n, k int, maxValue frame.Pixel, seed int64) error {
	pix := frame.RandomPixels(n, maxValue, seed)
	h, err := topk.Select(pix, k)
	if err != nil {
		return errors.WithMessagef(err, "n=%d seed=%d", n, seed)
	}

	got := topk.Drain(h)
	want := refTopK(pix, k)
	if len(got) != len(want) {
		return errors.Errorf("n=%d seed=%d: kept %d values, want %d", n, seed, len(got), len(want))
	}
	for i, r := range got {
		if r.Value != want[i] {
			return errors.Errorf("n=%d seed=%d: value[%d] = %d, want %d", n, seed, i, r.Value, want[i])
		}
		if int(r.Pos) >= n || pix[r.Pos] != r.Value {
			return errors.Errorf("n=%d seed=%d: position %d does not hold value %d", n, seed, r.Pos, r.Value)
		}
	}
	return nil
}

// refTopK is the brute-force oracle: sort a copy, keep the highest k
// values, ascending. Deliberately the dumbest possible check.
func refTopK(pix []frame.Pixel, k int) []frame.Pixel {
	sorted := make([]frame.Pixel, len(pix))
	copy(sorted, pix)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[len(sorted)-k:]
}

// runWorkers starts n consumer goroutines plus the producer and waits
// for all of them.
func runWorkers(n int, consume func(), produce func()) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			consume()
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		produce()
	}()
	wg.Wait()
}
