package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `toml:"gin_mode"`
}

type LoggerConfig struct {
	ServiceName string `toml:"service_name"`
	Level       string `toml:"level"`
	Format      string `toml:"format"` // json or console
	AddSource   bool   `toml:"add_source"`
	LogFile     string `toml:"log_file"`
	MaxSize     int    `toml:"max_size"` // megabytes
	MaxBackups  int    `toml:"max_backups"`
	MaxAge      int    `toml:"max_age"` // days
	Compress    bool   `toml:"compress"`
}

// LLMConfig selects the provider. Temperature and TopP tune the chat model
// only; the analysis model keeps provider defaults.
type LLMConfig struct {
	Provider      string  `toml:"provider"`
	APIKey        string  `toml:"api_key"`
	BaseURL       string  `toml:"base_url"`
	AnalysisModel string  `toml:"analysis_model"`
	ChatModel     string  `toml:"chat_model"`
	Temperature   float32 `toml:"temperature"`
	TopP          float32 `toml:"top_p"`
	MaxTokens     int     `toml:"max_tokens"`
}

type StoreConfig struct {
	// Backend is one of memory, file, redis, memgraph.
	Backend string `toml:"backend"`
	Path    string `toml:"path"` // directory for the file backend
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type MetricsConfig struct {
	EigenTolerance        float64 `toml:"eigen_tolerance"`
	EigenMaxIterations    int     `toml:"eigen_max_iterations"`
	PageRankAlpha         float64 `toml:"pagerank_alpha"`
	PageRankTolerance     float64 `toml:"pagerank_tolerance"`
	PageRankMaxIterations int     `toml:"pagerank_max_iterations"`
	Community             string  `toml:"community"` // louvain, label_propagation, components
	LouvainResolution     float64 `toml:"louvain_resolution"`
	LouvainMaxPasses      int     `toml:"louvain_max_passes"`
	Parallel              bool    `toml:"parallel"`
}

// Prompts overrides the built-in prompt templates. Empty means built-in.
type Prompts struct {
	// Analysis refers to the uploaded source text as {{context}} and to the
	// graph JSON as {{graph}}.
	Analysis string `toml:"analysis"`
	// Persona is the system preamble of the conversational collaborator.
	Persona      string `toml:"persona"`
	PersonaName  string `toml:"persona_name"`
	Greeting     string `toml:"greeting"`
	HistoryLimit int    `toml:"history_limit"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LoggerConfig   `toml:"log"`
	LLM      LLMConfig      `toml:"llm"`
	Store    StoreConfig    `toml:"store"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Redis    RedisConfig    `toml:"redis"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Prompts  Prompts        `toml:"prompts"`
}

// Default returns a configuration that runs without any file: Gemini for
// suggestions and chat, JSON files under ./data for persistence.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", GinMode: "release"},
		Log: LoggerConfig{
			ServiceName: "kgraph",
			Level:       "info",
			Format:      "console",
			MaxSize:     50,
			MaxBackups:  3,
			MaxAge:      28,
		},
		LLM: LLMConfig{
			Provider:      "gemini",
			AnalysisModel: "gemini-2.5-pro",
			ChatModel:     "gemini-2.5-flash",
			Temperature:   0.7,
			TopP:          0.9,
			MaxTokens:     4096,
		},
		Store:    StoreConfig{Backend: "file", Path: "data"},
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
		Redis:    RedisConfig{Addr: "localhost:6379", KeyPrefix: "kgraph:"},
		Metrics: MetricsConfig{
			EigenTolerance:        1e-6,
			EigenMaxIterations:    1000,
			PageRankAlpha:         0.85,
			PageRankTolerance:     1e-6,
			PageRankMaxIterations: 100,
			Community:             "louvain",
			LouvainResolution:     1.0,
			LouvainMaxPasses:      100,
			Parallel:              true,
		},
		Prompts: Prompts{HistoryLimit: 20},
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration values from environment variables.
func (c *Config) ApplyEnv() {
	setString(&c.Server.Port, "PORT")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.LLM.AnalysisModel, "LLM_ANALYSIS_MODEL")
	setString(&c.LLM.ChatModel, "LLM_CHAT_MODEL")
	setString(&c.Store.Backend, "STORE_BACKEND")
	setString(&c.Store.Path, "STORE_PATH")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Memgraph.URI, "MEMGRAPH_URI")
	setString(&c.Memgraph.User, "MEMGRAPH_USER")
	setString(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")

	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Redis.DB = n
		}
	}
	// The Gemini SDK convention.
	if c.LLM.APIKey == "" {
		setString(&c.LLM.APIKey, "GEMINI_API_KEY")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
