package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Upstream
	WeatherGateway   WeatherGateway
	ConditionCatalog ConditionCatalog

	// Storage
	SnapshotStore    SnapshotStore
	LocationRegistry LocationRegistry
	HistoricalLedger HistoricalLedger

	// Observability
	WeatherMetrics WeatherMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Clock          Clock
	Database       interface{}
}
