package usecasecontract

import "time"

// IConfigProvider exposes runtime settings.
type IConfigProvider interface {
	GetAppEnv() string
	GetPort() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetS3BucketName() string
	GetS3Region() string
	GetCORSAllowedOrigins() []string
	GetRateLimitPerSecond() float64
	GetCacheTTL() time.Duration
	GetShutdownTimeout() time.Duration
	GetBoardSettings() BoardSettings
}

// BoardSettings carries the arrangement board timings.
type BoardSettings struct {
	HoldThreshold time.Duration
	SaveDebounce  time.Duration
	SaveSettle    time.Duration
	EmptyMessage  string
	Columns       int
}
