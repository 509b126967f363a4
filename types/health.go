package types

// HealthStatus is the readiness report for the service and its store.
type HealthStatus struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	StoreError string `json:"storeError,omitempty"`
}
