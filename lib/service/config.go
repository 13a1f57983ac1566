package service

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl         string  `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	Host                    string  `envconfig:"HOST" default:"localhost:3000"`
	Port                    int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	FrontendUrl             string  `envconfig:"FRONTEND_URL" default:"http://localhost:8501"`
	TokenContract           string  `envconfig:"TOKEN_CONTRACT" default:"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"` // USDC on Base mainnet
	ChainName               string  `envconfig:"CHAIN_NAME" default:"base-mainnet"`
	WebhookUrl              string  `envconfig:"WEBHOOK_URL"`
	RabbitMQUri             string  `envconfig:"RABBITMQ_URI"`
	RabbitMQInvoiceExchange string  `envconfig:"RABBITMQ_INVOICE_EXCHANGE" default:"stablepay_invoice"`
	Branding                BrandingConfig
}

type BrandingConfig struct {
	Title string `envconfig:"BRANDING_TITLE" default:"Stablepay - USDC payment links"`
	Desc  string `envconfig:"BRANDING_DESC" default:"Stablecoin payment links settled on Base"`
	Url   string `envconfig:"BRANDING_URL" default:"https://stablepay.example.com"`
}
