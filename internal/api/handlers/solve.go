// Package handlers implements the HTTP surface over the unit-commitment
// engine, grounded on the teacher's internal/api/handlers/backtest.go
// request/validate/run/respond shape.
package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"ucopt/internal/api/models"
	"ucopt/internal/engine"
	"ucopt/internal/problem"
	"ucopt/internal/rolling"
	"ucopt/internal/solver"
)

// SolveHandler runs single-horizon and rolling-horizon solves.
type SolveHandler struct{}

// NewSolveHandler constructs a SolveHandler.
func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// Solve handles POST /api/v1/solve.
func (h *SolveHandler) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Minute)
	defer cancel()

	p, result, err := engine.Run(ctx, req.Name, req.InputDataPath, req.OutputDataPath)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSolveResponse(req.Name, p, result))
}

// Series handles GET /api/v1/solve/series.
func (h *SolveHandler) Series(c *gin.Context) {
	var req models.SeriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Minute)
	defer cancel()

	days, err := rolling.Run(ctx, req.Name, req.InputDataPath, req.OutputDataPath)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	resp := models.SeriesResponse{Name: req.Name}
	for _, d := range days {
		resp.Days = append(resp.Days, models.SolveResponse{
			Name:        d.Name,
			Status:      d.Result.Status.String(),
			Objective:   d.Result.Objective,
			WallTimeSec: d.Result.WallTime.Seconds(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func toSolveResponse(name string, p *problem.Problem, result solver.Result) models.SolveResponse {
	resp := models.SolveResponse{
		Name:        name,
		Status:      result.Status.String(),
		Objective:   result.Objective,
		WallTimeSec: result.WallTime.Seconds(),
	}
	if result.Status == solver.Optimal {
		entries, err := os.ReadDir(p.Paths.Results)
		if err == nil {
			for _, e := range entries {
				resp.ResultFiles = append(resp.ResultFiles, filepath.Join(p.Paths.Results, e.Name()))
			}
		}
	}
	return resp
}

func respondEngineError(c *gin.Context, err error) {
	switch err.(type) {
	case *problem.ConfigError:
		respondError(c, http.StatusBadRequest, "CONFIG_ERROR", err.Error())
	case *problem.ConsistencyError:
		respondError(c, http.StatusUnprocessableEntity, "CONSISTENCY_ERROR", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "SOLVE_ERROR", err.Error())
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}})
}
