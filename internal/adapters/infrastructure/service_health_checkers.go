package infrastructure

import (
	"context"

	"geoweather.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// SnapshotStoreHealthChecker pings the proximity snapshot store
type SnapshotStoreHealthChecker struct {
	store     ports.SnapshotStore
	storeType string
}

// NewSnapshotStoreHealthChecker creates a new snapshot store health checker
func NewSnapshotStoreHealthChecker(store ports.SnapshotStore, storeType string) *SnapshotStoreHealthChecker {
	return &SnapshotStoreHealthChecker{store: store, storeType: storeType}
}

// Check verifies that the snapshot store answers
func (s *SnapshotStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "snapshotStore",
		Details: map[string]interface{}{
			"type": s.storeType,
		},
	}

	if s.store == nil {
		status.Status = StatusDisabled
		return status
	}

	if err := s.store.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	return status
}

// UpstreamHealthChecker reports the configured upstream gateway without calling the providers
type UpstreamHealthChecker struct {
	gateway ports.WeatherGateway
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(gateway ports.WeatherGateway) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{gateway: gateway}
}

// Check reports provider details; upstream quota is not spent on health probes
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstream",
		Status:    StatusHealthy,
	}

	if u.gateway == nil {
		status.Status = StatusUnhealthy
		status.Error = "weather gateway is not available"
		return status
	}

	status.Details = u.gateway.GetProviderInfo()
	return status
}
