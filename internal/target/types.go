package target

// HealthStatus represents the health status of a target endpoint
type HealthStatus struct {
	// TargetName is the name of the target
	TargetName string

	// Healthy indicates if the last health check passed
	Healthy bool

	// Error contains any health check error
	Error error

	// StatusCode is the HTTP status returned by the health check
	StatusCode int
}
