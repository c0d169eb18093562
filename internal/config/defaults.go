package config

import "time"

const (
	defaultPort      = 8080
	defaultPprofPort = 6060
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "shipping",
	Pass: "shipping",
	Name: "shipping_db",
}

var defaultKafka = Kafka{
	Topic:   "courier-events",
	GroupID: "shipping-service-worker",
}

var defaultAuth = Auth{
	TokenTTL: 24 * time.Hour,
}

var defaultRouting = Routing{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Limit:  50,
	Window: time.Second,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultPprofPort returns the default pprof port.
func DefaultPprofPort() int { return defaultPprofPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultKafka returns the default courier event feed settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultAuth returns the default auth settings (no secret; must come from env).
func DefaultAuth() Auth { return defaultAuth }

// DefaultRouting returns the default distance gateway settings.
func DefaultRouting() Routing { return defaultRouting }

// DefaultRateLimit returns the default write-endpoint throttle settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }
