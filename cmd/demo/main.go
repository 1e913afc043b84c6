package main

// Demo:
// - Load a scenario YAML pointing at a unit-commitment input directory
// - Run the full build->solve->extract_results pipeline
// - Print the first few intervals of dispatched power per unit

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"ucopt/internal/config"
	"ucopt/internal/engine"
	"ucopt/internal/solver"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Path to scenario YAML")
	n := flag.Int("n", 12, "Number of intervals to print")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}

	s, err := config.Load(*scenarioPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	p, result, err := engine.RunScenario(ctx, s)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario=%s status=%s objective=%.2f wall_time=%s\n", s.Name, result.Status, result.Objective, result.WallTime)
	if result.Status != solver.Optimal {
		return
	}

	units := p.Sets.Units.Indices
	intervals := p.Sets.Intervals.Indices
	limit := *n
	if limit > len(intervals) {
		limit = len(intervals)
	}

	fmt.Printf("\npower_generated (MW), first %d intervals:\n", limit)
	fmt.Printf("%-10s", "interval")
	for _, u := range units {
		fmt.Printf("%12v", u)
	}
	fmt.Println()

	for _, iAny := range intervals[:limit] {
		i := iAny.(int)
		fmt.Printf("%-10d", i)
		for _, uAny := range units {
			u := uAny.(string)
			idx, ok := p.Vars.PowerGenerated.IndexOf(i, u)
			if !ok {
				fmt.Printf("%12s", "-")
				continue
			}
			fmt.Printf("%12.2f", p.Vars.PowerGenerated.Values[idx])
		}
		fmt.Println()
	}

	fmt.Printf("\nresults written to %s\n", p.Paths.Results)
}
