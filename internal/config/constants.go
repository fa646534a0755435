package config

// Configuration file paths
const (
	ConfigPathListings = "configs/listings.yaml"
	ConfigPathSchema   = "configs/schemas/item.schema.json"
)

// Environment variables
const (
	EnvGameRoot       = "BARO_ROOT"
	EnvOutputDir      = "OUTPUT_DIR"
	EnvLanguage       = "LANGUAGE"
	EnvPackageFile    = "CONTENT_PACKAGE"
	EnvListingsFile   = "LISTINGS_FILE"
	EnvSchemaPath     = "SCHEMA_PATH"
	EnvMetricsFile    = "METRICS_FILE"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvSkipEventItems = "SKIP_EVENT_ITEMS"
	EnvWorkers        = "TEXTURE_WORKERS"
	EnvPathCacheSize  = "PATH_CACHE_SIZE"
	EnvPathCacheTTL   = "PATH_CACHE_TTL"
)

// Defaults
const (
	DefaultGameRoot      = "."
	DefaultOutputDir     = "out"
	DefaultLanguage      = "English"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultWorkers       = 4
	DefaultPathCacheSize = 4096
)

// DefaultMerchants are the merchant ids written to the default listing document.
var DefaultMerchants = []string{
	"outpost",
	"city",
	"research",
	"military",
	"mine",
	"engineering",
	"medical",
	"armory",
}

// Error messages
const (
	ErrMsgInvalidConfig       = "invalid configuration: %w"
	ErrMsgReadListingsFailed  = "failed to read listings file %s: %w"
	ErrMsgParseListingsFailed = "failed to parse listings file %s: %w"
	ErrMsgInvalidListings     = "invalid listings file %s: %w"
)
