package dto

// HealthResponse is the response of the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
