package rest

import "context"

// HealthCheck is one probe result for the doctor command.
type HealthCheck struct {
	Name    string
	OK      bool
	Details string
}

// Health probes the service and database health endpoints. A failing probe
// is reported in its check, not returned as an error.
func (c *Client) Health(ctx context.Context) []HealthCheck {
	checks := make([]HealthCheck, 0, 2)
	for _, probe := range []struct {
		name string
		path string
	}{
		{name: "service", path: "/health"},
		{name: "database", path: "/db-health"},
	} {
		err := c.GetJSON(ctx, "health check", probe.path, nil)
		check := HealthCheck{Name: probe.name, OK: err == nil, Details: "reachable"}
		if err != nil {
			check.Details = err.Error()
		}
		checks = append(checks, check)
	}
	return checks
}
