package engine

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ucopt/internal/config"
	"ucopt/internal/data"
	"ucopt/internal/problem"
	"ucopt/internal/solver"
	"ucopt/internal/uc"
)

// RunScenario resolves a scenario's remote-demand and unit-catalog-
// preset options (SPEC_FULL.md 4.9) before delegating to Run. A
// scenario naming neither one runs directly against s.InputDataPath,
// with no staging.
func RunScenario(ctx context.Context, s *config.Scenario) (*problem.Problem, solver.Result, error) {
	inputDataPath := s.InputDataPath

	if s.Remote.Enabled || s.Preset.Name != "" {
		staged, err := stageScenarioInputs(s)
		if err != nil {
			return nil, solver.Result{}, err
		}
		inputDataPath = staged
	}

	return Run(ctx, s.Name, inputDataPath, s.OutputDataPath)
}

// stageScenarioInputs copies the scenario's input directory into a
// scratch directory, then overwrites demand.csv (remote fetch) and/or
// unit_data.csv (preset merge) before the CSV loaders ever see them.
func stageScenarioInputs(s *config.Scenario) (string, error) {
	dir, err := os.MkdirTemp("", "ucopt-scenario-*")
	if err != nil {
		return "", err
	}

	for _, base := range []string{"settings.csv", "unit_data.csv", "demand.csv", "variable_traces.csv", "initial_state.csv", "constraint_list.csv", "reserve_requirement.csv"} {
		if err := copyIfExists(filepath.Join(s.InputDataPath, base), filepath.Join(dir, base)); err != nil {
			return "", err
		}
	}

	if s.Remote.Enabled {
		if err := stageRemoteDemand(s, dir); err != nil {
			return "", err
		}
	}
	if s.Preset.Name != "" {
		if err := stagePresetCatalog(s, dir); err != nil {
			return "", err
		}
	}

	return dir, nil
}

// stageRemoteDemand fetches a demand forecast for the scenario's region
// and writes it over the staged demand.csv, replacing the local file
// the way SPEC_FULL.md 4.9 describes -- grounded on
// cmd/update-locations/main.go's REMOTE_API_KEY-from-env pattern (the
// teacher reads GRIDSTATUS_API_KEY the same way for its own remote
// client).
func stageRemoteDemand(s *config.Scenario, dir string) error {
	client := data.NewRemoteClient(os.Getenv("REMOTE_API_KEY"), os.Getenv("REMOTE_API_BASE_URL"))

	now := time.Now().UTC()
	resp, err := client.QueryDemandForecast(data.QueryDemandForecastParams{
		Region:    s.Remote.Region,
		StartTime: now,
		EndTime:   now.Add(24 * time.Hour),
	})
	if err != nil {
		return fmt.Errorf("fetch remote demand forecast: %w", err)
	}

	return writeDemandCSV(filepath.Join(dir, "demand.csv"), resp.ToDemandMap())
}

// stagePresetCatalog loads the named preset and merges it under the
// staged unit_data.csv (or writes the preset alone, when no local
// unit_data.csv exists), matching data.MergeCatalogWithPreset's
// preset-supplies-defaults, CSV-overrides direction.
func stagePresetCatalog(s *config.Scenario, dir string) error {
	presetFile := s.Preset.File
	if presetFile == "" {
		presetFile = data.GetDefaultPresetsPath()
	}
	list, err := data.LoadPresets(presetFile)
	if err != nil {
		return fmt.Errorf("load fleet preset file %s: %w", presetFile, err)
	}
	preset, ok := list.Find(s.Preset.Name)
	if !ok {
		return fmt.Errorf("fleet preset %q not found in %s", s.Preset.Name, presetFile)
	}

	unitDataPath := filepath.Join(dir, "unit_data.csv")
	present, err := data.CheckPathExists(unitDataPath, "Unit Data File", false)
	if err != nil {
		return err
	}
	if !present {
		return writeUnitDataCSV(unitDataPath, preset.Rows)
	}

	catalog, err := data.LoadCatalogWithPreset(unitDataPath, preset)
	if err != nil {
		return err
	}
	return writeUnitDataCSV(unitDataPath, catalog.Rows)
}

func copyIfExists(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func writeDemandCSV(path string, demand map[int]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Interval", "Demand"}); err != nil {
		return err
	}
	for i := 0; i < len(demand); i++ {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(demand[i], 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

var unitDataHeader = []string{
	"Unit", "Technology", "CapacityMW", "NumUnits", "FuelCost$/GJ",
	"ThermalEfficiencyFrac", "VOM$/MWh", "MinimumGenerationFrac",
	"MinimumUpTimeHrs", "MinimumDownTimeHrs", "RampRate_pctCapphr",
	"StorageHrs", "RoundTripEfficiencyFrac",
}

// writeUnitDataCSV writes rows back out in unit_data.csv's own column
// order, so the merged (preset + CSV) catalog can flow through the same
// LoadCatalog path every other input file does.
func writeUnitDataCSV(path string, rows []uc.UnitRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(unitDataHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Unit,
			string(r.Technology),
			strconv.FormatFloat(r.CapacityMW, 'f', 6, 64),
			strconv.Itoa(r.NumUnits),
			strconv.FormatFloat(r.FuelCostPerGJ, 'f', 6, 64),
			strconv.FormatFloat(r.ThermalEfficiencyFrac, 'f', 6, 64),
			strconv.FormatFloat(r.VOMPerMWh, 'f', 6, 64),
			strconv.FormatFloat(r.MinimumGenerationFrac, 'f', 6, 64),
			strconv.Itoa(r.MinimumUpTimeHrs),
			strconv.Itoa(r.MinimumDownTimeHrs),
			strconv.FormatFloat(r.RampRatePctCapPerHr, 'f', 6, 64),
			strconv.FormatFloat(r.StorageHrs, 'f', 6, 64),
			strconv.FormatFloat(r.RoundTripEfficiencyFrac, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
