package constants

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Wire formats for civil dates and wall-clock times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Default availability window seeded for new event types.
const (
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "17:00"
)
