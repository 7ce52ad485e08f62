package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Payment  PaymentConfig
	Stripe   StripeConfig
	Redirect RedirectConfig
	SMTP     SMTPConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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
	Driver    string
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

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	EmailTopic     string
	EmailChannel   string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig maps caller names to the API keys they present on
// service-to-service and provider-facing routes.
type APIKeyConfig struct {
	Keys map[string]string
}

// PaymentConfig contains hosted-payment-page gateway configuration
type PaymentConfig struct {
	StoreID         string
	StorePassword   string
	GatewayURL      string
	CallbackBaseURL string
	DefaultCurrency string
	InitTimeout     int // seconds, outbound initiation call budget
	PendingMaxAge   int // minutes before a Pending transaction is expired
	SweepInterval   int // minutes between stale-Pending sweeps
}

// StripeConfig contains card-element provider configuration
type StripeConfig struct {
	SecretKey string
}

// RedirectConfig contains the client-facing destinations for terminal
// payment outcomes. Distinct per deployment environment.
type RedirectConfig struct {
	SuccessURL string
	FailURL    string
	CancelURL  string
}

// SMTPConfig contains outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
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
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
