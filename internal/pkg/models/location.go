package models

import "time"

// Location is a geographic point with the time it was observed.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdate is a driver GPS report pushed by the driver client.
type LocationUpdate struct {
	DriverID     string   `json:"driver_id"`
	TripID       string   `json:"trip_id,omitempty"`
	Location     Location `json:"location"`
	SpeedKmh     *float64 `json:"speed_kmh,omitempty"`
	Heading      *float64 `json:"heading,omitempty"`
	AccuracyM    *float64 `json:"accuracy_m,omitempty"`
	BatteryLevel *int     `json:"battery_level,omitempty"`
}

// VitalsReading is the latest health sample from the driver wearable.
type VitalsReading struct {
	HeartRate int       `json:"heart_rate"`
	Steps     int       `json:"steps"`
	Timestamp time.Time `json:"timestamp"`
}
