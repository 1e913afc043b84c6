package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"ucopt/internal/api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	var buf bytes.Buffer
	for _, row := range rows {
		buf.WriteString(row[0])
		for _, cell := range row[1:] {
			buf.WriteByte(',')
			buf.WriteString(cell)
		}
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func postJSON(body any) (*httptest.ResponseRecorder, *gin.Context) {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// TestSolve_InvalidRequestMissingRequiredField exercises gin's binding
// validation path before the engine is ever invoked.
func TestSolve_InvalidRequestMissingRequiredField(t *testing.T) {
	w, c := postJSON(map[string]string{"name": "missing-paths"})

	h := NewSolveHandler()
	h.Solve(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Code != "INVALID_REQUEST" {
		t.Fatalf("error code = %q, want INVALID_REQUEST", resp.Error.Code)
	}
}

// TestSolve_ConfigErrorMapsTo400 exercises the engine-error dispatch:
// a nonexistent input directory surfaces as problem.ConfigError, which
// respondEngineError maps to 400 CONFIG_ERROR, not a generic 500.
func TestSolve_ConfigErrorMapsTo400(t *testing.T) {
	dir := t.TempDir()
	w, c := postJSON(models.SolveRequest{
		Name:           "missing-input",
		InputDataPath:  filepath.Join(dir, "does-not-exist"),
		OutputDataPath: filepath.Join(dir, "out"),
	})

	h := NewSolveHandler()
	h.Solve(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Code != "CONFIG_ERROR" {
		t.Fatalf("error code = %q, want CONFIG_ERROR", resp.Error.Code)
	}
}

// TestSolve_ValidRequestReturnsOptimalObjective exercises the full
// request/engine/response round trip with a minimal feasible scenario.
func TestSolve_ValidRequestReturnsOptimalObjective(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	writeCSV(t, filepath.Join(dir, "settings.csv"), [][]string{
		{"Parameter", "Type", "Value"},
		{"IntervalDurationHrs", "float", "1"},
		{"ValueOfLostLoad$/MWh", "float", "1000"},
		{"reserves", "str", "None"},
	})
	writeCSV(t, filepath.Join(dir, "unit_data.csv"), [][]string{
		{"Unit", "Technology", "CapacityMW", "NumUnits", "FuelCost$/GJ", "ThermalEfficiencyFrac", "VOM$/MWh", "MinimumGenerationFrac", "MinimumUpTimeHrs", "MinimumDownTimeHrs", "RampRate_pctCapphr", "StorageHrs", "RoundTripEfficiencyFrac"},
		{"U1", "Coal", "100", "1", "0", "1", "10", "1", "1", "1", "1", "0", "0"},
	})
	writeCSV(t, filepath.Join(dir, "demand.csv"), [][]string{
		{"Interval", "Demand"},
		{"0", "50"},
	})

	w, c := postJSON(models.SolveRequest{
		Name:           "handler-roundtrip",
		InputDataPath:  dir,
		OutputDataPath: outDir,
	})

	h := NewSolveHandler()
	h.Solve(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "Optimal" {
		t.Fatalf("status = %q, want Optimal", resp.Status)
	}
	// MinimumGenerationFrac=1 would force a committed U1 to 100 MW against
	// 50 MW of demand, so U1 stays off and the demand is unserved.
	if want := 50000.0; resp.Objective != want {
		t.Fatalf("objective = %v, want %v (50 MW unserved * 1000 $/MWh VoLL, 1h interval)", resp.Objective, want)
	}
	if len(resp.ResultFiles) == 0 {
		t.Fatal("expected at least one result file to be listed")
	}
}

// TestSeries_InvalidQueryMissingRequiredField exercises the query-string
// binding path for GET /api/v1/solve/series.
func TestSeries_InvalidQueryMissingRequiredField(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/solve/series?name=incomplete", nil)

	h := NewSolveHandler()
	h.Series(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
