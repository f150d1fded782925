// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Server   ServerConfig            `mapstructure:"server"`
	Dataset  DatasetConfig           `mapstructure:"dataset"`
	Engine   EngineConfig            `mapstructure:"engine"`
	Cache    CacheConfig             `mapstructure:"cache"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address"`
	ReadTimeout   int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout  int    `mapstructure:"write_timeout"` // milliseconds
	BodyLimit     int    `mapstructure:"body_limit"`    // bytes
	SlowThreshold int    `mapstructure:"slow_threshold"`
	AllowOrigins  string `mapstructure:"allow_origins"`
}

// Dataset sources.
const (
	DatasetSourceEmbedded = "embedded"
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type DatasetConfig struct {
	Source  string `mapstructure:"source"`
	Path    string `mapstructure:"path"`    // directory holding questions.json, taxonomy.json, catalog.json
	Version string `mapstructure:"version"` // postgres only; empty selects the latest row
}

// EngineConfig overrides the scoring defaults. Zero values keep the engine default.
type EngineConfig struct {
	TopN                    int                    `mapstructure:"top_n"`
	TopTagCount             int                    `mapstructure:"top_tag_count"`
	DefaultQuestionWeight   float64                `mapstructure:"default_question_weight"`
	DefaultCategoryWeights  CategoryWeightsConfig  `mapstructure:"default_category_weights"`
	DefaultDomainBonus      float64                `mapstructure:"default_domain_bonus"`
	MaxComplexityMultiplier float64                `mapstructure:"max_complexity_multiplier"`
	LowConfidenceThreshold  float64                `mapstructure:"low_confidence_threshold"`
	Tiers                   []TierConfig           `mapstructure:"tiers"`
	RadarDimensions         []RadarDimensionConfig `mapstructure:"radar_dimensions"`
}

type CategoryWeightsConfig struct {
	Skills      float64 `mapstructure:"skills"`
	Values      float64 `mapstructure:"values"`
	Temperament float64 `mapstructure:"temperament"`
}

type TierConfig struct {
	Tier        string  `mapstructure:"tier"`
	Label       string  `mapstructure:"label"`
	Description string  `mapstructure:"description"`
	MinScore    float64 `mapstructure:"min_score"`
}

type RadarDimensionConfig struct {
	Name string   `mapstructure:"name"`
	Tags []string `mapstructure:"tags"`
}

type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	TTL       int    `mapstructure:"ttl"` // milliseconds
	KeyPrefix string `mapstructure:"key_prefix"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the job worker settings for one task type.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
