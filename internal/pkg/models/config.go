package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Services ServicesConfig
	Trips    TripsConfig
	Tracking TrackingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig contains URLs for external collaborators
type ServicesConfig struct {
	RoutingEngineURL string
	VitalsBridgeURL  string
}

// TripsConfig contains the trip lifecycle policy knobs: the confirmation
// window offsets relative to scheduled departure and the stop completion
// gates.
type TripsConfig struct {
	// Confirmation window opens OpenOffset before departure and closes
	// CloseOffset before departure.
	OpenOffsetMinutes  int
	CloseOffsetMinutes int
	// Confirmed trips become interactable this close to departure.
	InteractOffsetMinutes int
	// Proximity gate for stop completion, in meters.
	ProximityThresholdM float64
	// Wearable connectivity policy gates.
	RequireVitalsToStart bool
	RequireVitalsAtStops bool
	// Dispatcher may force-complete a trip with stops outstanding.
	AllowForceComplete bool
}

// OpenOffset returns the confirmation window opening offset as a duration.
func (c TripsConfig) OpenOffset() time.Duration {
	return time.Duration(c.OpenOffsetMinutes) * time.Minute
}

// CloseOffset returns the confirmation window closing offset as a duration.
func (c TripsConfig) CloseOffset() time.Duration {
	return time.Duration(c.CloseOffsetMinutes) * time.Minute
}

// InteractOffset returns the pre-departure interaction offset as a duration.
func (c TripsConfig) InteractOffset() time.Duration {
	return time.Duration(c.InteractOffsetMinutes) * time.Minute
}

// TrackingConfig contains driver location store configuration
type TrackingConfig struct {
	// Last-known locations older than this are treated as unavailable.
	FreshnessSeconds int
	// TTL for stored last-known locations.
	TTLSeconds int
}

// Freshness returns the staleness bound as a duration.
func (c TrackingConfig) Freshness() time.Duration {
	return time.Duration(c.FreshnessSeconds) * time.Second
}

// TTL returns the location TTL as a duration.
func (c TrackingConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
