package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"ucopt/internal/config"
	"ucopt/internal/engine"
	"ucopt/internal/problem"
	"ucopt/internal/rolling"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "series":
		cmdSeries(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve --scenario scenario.yaml")
	fmt.Println("  cli series --scenario scenario.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - solve runs a single full-horizon unit-commitment problem")
	fmt.Println("  - series partitions the horizon into rolling windows")
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to scenario YAML")
	_ = fs.Parse(args)

	if *scenarioPath == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}

	s, err := config.Load(*scenarioPath)
	if err != nil {
		die(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	p, result, err := engine.RunScenario(ctx, s)
	if err != nil {
		die(err)
	}

	fmt.Printf("%s: status=%s objective=%.2f wall_time=%s\n", s.Name, result.Status, result.Objective, result.WallTime)
	if p != nil {
		fmt.Printf("results written to %s\n", p.Paths.Results)
	}
}

func cmdSeries(args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to scenario YAML")
	_ = fs.Parse(args)

	if *scenarioPath == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}

	s, err := config.Load(*scenarioPath)
	if err != nil {
		die(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	days, err := rolling.Run(ctx, s.Name, s.InputDataPath, s.OutputDataPath)
	if err != nil {
		die(err)
	}

	for _, d := range days {
		fmt.Printf("%s: status=%s objective=%.2f wall_time=%s\n", d.Name, d.Result.Status, d.Result.Objective, d.Result.WallTime)
	}
}

func die(err error) {
	switch e := err.(type) {
	case *problem.ConfigError:
		fmt.Fprintf(os.Stderr, "%s\n", e.Error())
	case *problem.ConsistencyError:
		fmt.Fprintf(os.Stderr, "%s\n", e.Error())
	default:
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
