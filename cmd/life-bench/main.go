package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"

	"lifecanvas/internal/core"
	pcore "lifecanvas/pkg/core"
	"lifecanvas/pkg/life"
)

type scenario struct {
	cols, rows int
	density    float64
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d density=%.2f", s.cols, s.rows, s.density)
}

type scenarioResult struct {
	scenario
	steps      int
	elapsed    time.Duration
	population int
	initialFPS int
}

// rate is the measured generations per second.
func (r scenarioResult) rate() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.steps) / r.elapsed.Seconds()
}

// keepsUp reports whether the engine can sustain the initial tick rate.
func (r scenarioResult) keepsUp() bool { return r.rate() >= float64(r.initialFPS) }

func main() {
	steps := 200
	workers := runtime.NumCPU()
	sizes := "64x48,128x96,256x192,512x384,1000x900"
	densities := "0.1,0.3,0.5"
	seed := int64(1337)
	noColor := false

	flaggy.SetName("life-bench")
	flaggy.SetDescription("Measure generation throughput against the initial tick rate")
	flaggy.Int(&steps, "n", "steps", "generations to simulate per scenario")
	flaggy.Int(&workers, "w", "workers", "number of scenarios run in parallel")
	flaggy.String(&sizes, "s", "sizes", "comma separated COLSxROWS grid sizes")
	flaggy.String(&densities, "d", "densities", "comma separated random fill densities")
	flaggy.Int64(&seed, "", "seed", "seed for random fill")
	flaggy.Bool(&noColor, "", "no-color", "disable coloured output")
	flaggy.Parse()

	au := aurora.NewAurora(!noColor)
	sets, err := buildScenarios(sizes, densities)
	if err != nil {
		fmt.Fprintln(os.Stderr, au.Red(err))
		os.Exit(2)
	}

	fmt.Printf("Benchmarking %d scenarios (%d workers, %d steps)\n", len(sets), workers, steps)
	start := time.Now()
	all, err := runAll(context.Background(), sets, steps, seed, workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, au.Red(err))
		os.Exit(1)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].cols*all[i].rows < all[j].cols*all[j].rows ||
			(all[i].cols*all[i].rows == all[j].cols*all[j].rows && all[i].density < all[j].density)
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		verdict := au.Green("ok")
		if !res.keepsUp() {
			verdict = au.Red("slow")
		}
		fmt.Printf("%-28s %9.1f gen/s  initial fps=%2d  alive=%7d  %s\n",
			res.scenario, res.rate(), res.initialFPS, res.population, verdict)
	}
}

func buildScenarios(sizes, densities string) ([]scenario, error) {
	var ds []float64
	for _, field := range strings.Split(densities, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || d < 0 || d > 1 {
			return nil, fmt.Errorf("bad density %q", field)
		}
		ds = append(ds, d)
	}
	var sets []scenario
	for _, field := range strings.Split(sizes, ",") {
		cols, rows, ok := strings.Cut(strings.TrimSpace(field), "x")
		if !ok {
			return nil, fmt.Errorf("bad size %q, expected COLSxROWS", field)
		}
		c, errC := strconv.Atoi(cols)
		r, errR := strconv.Atoi(rows)
		if errC != nil || errR != nil {
			return nil, fmt.Errorf("bad size %q, expected COLSxROWS", field)
		}
		for _, d := range ds {
			sets = append(sets, scenario{cols: c, rows: r, density: d})
		}
	}
	return sets, nil
}

func runAll(ctx context.Context, sets []scenario, steps int, seed int64, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, sc := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(sc, steps, seed)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(sc scenario, steps int, seed int64) (scenarioResult, error) {
	grid, err := life.NewGrid(sc.cols, sc.rows, 1)
	if err != nil {
		return scenarioResult{}, err
	}
	grid.Fill(pcore.NewRand(seed), sc.density)

	start := time.Now()
	for range steps {
		grid.Advance()
	}
	return scenarioResult{
		scenario:   sc,
		steps:      steps,
		elapsed:    time.Since(start),
		population: grid.Population(),
		initialFPS: core.InitialFPS(sc.cols, sc.rows),
	}, nil
}
