package constants

// Redis key patterns. Driver locations are kept both as a hash with the last
// known fix and in a geo set for proximity queries.
const (
	KeyDriverLocation = "driver:location:%s" // driver id
	KeyDriverGeoSet   = "drivers:geo"

	KeyTripLock = "trip:lock:%s" // trip id

	// Hash fields inside KeyDriverLocation.
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldTimestamp = "timestamp"
)
