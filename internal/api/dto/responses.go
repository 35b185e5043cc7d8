package dto

// JSON bodies served by the console next to its HTML pages.

type PendingPaymentsResponse struct {
	Count int `json:"count"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
