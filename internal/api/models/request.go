package models

// SolveRequest is the request body for POST /api/v1/solve.
type SolveRequest struct {
	Name           string `json:"name" binding:"required"`
	InputDataPath  string `json:"input_data_path" binding:"required"`
	OutputDataPath string `json:"output_data_path" binding:"required"`
}

// SeriesRequest is the query string for GET /api/v1/solve/series.
type SeriesRequest struct {
	Name           string `form:"name" binding:"required"`
	InputDataPath  string `form:"input_data_path" binding:"required"`
	OutputDataPath string `form:"output_data_path" binding:"required"`
}
