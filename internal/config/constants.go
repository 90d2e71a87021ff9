package config

// Supported DB_DRIVER values
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported LOG_FORMAT values
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Values from .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv          = "failed to parse environment"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrFmtInvalidPort       = "PORT must be between 1 and 65535, got %d"
	ErrFmtInvalidDriver     = "DB_DRIVER must be %q or %q, got %q"
	ErrFmtInvalidLogFormat  = "LOG_FORMAT must be %q or %q, got %q"
	ErrFmtNotPositive       = "%s must be positive"
	ErrMsgSQLitePathMissing = "SQLITE_PATH must be set when DB_DRIVER is sqlite"
)
