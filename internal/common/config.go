package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	OCR       OCRConfig
	Embedding EmbeddingConfig
	LLM       LLMConfig
	Verifier  VerifierConfig
	Pipeline  PipelineConfig
	Retention RetentionConfig
	Catalog   CatalogConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm  string
	Tesseract string
	DPI       int
	MaxPages  int
	Language  string
}

// EmbeddingConfig holds embedding backend configuration
type EmbeddingConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	Dimension    int
	MaxBatchSize int
	MaxRetries   int
	Timeout      time.Duration
	CacheDir     string
}

// LLMConfig holds chat backend configuration for the match arbiter
type LLMConfig struct {
	BaseURL        string
	APIKey         string
	PrimaryModel   string
	SecondaryModel string
	Temperature    float32
	MaxTokens      int
	Timeout        time.Duration
	MinConfidence  float64
}

// VerifierConfig holds matching thresholds. The defaults are the only set
// that is mutually consistent across components; override with care.
type VerifierConfig struct {
	HospitalThreshold    float64
	CategoryHard         float64
	CategorySoft         float64
	HybridAccept         float64
	SemanticAutoAccept   float64
	SemanticMinForLLM    float64
	LLMBandLow           float64
	LLMBandHigh          float64
	TopK                 int
	WeightSemantic       float64
	WeightTokenOverlap   float64
	WeightContainment    float64
	FinancialToleranceRs float64
}

// PipelineConfig holds upload pipeline configuration
type PipelineConfig struct {
	UploadsDir             string
	LeaseTTL               time.Duration
	ReconcileInterval      time.Duration
	StaleProcessingTimeout time.Duration
}

// RetentionConfig holds soft-delete retention configuration
type RetentionConfig struct {
	RetentionDays   int
	CleanupInterval time.Duration
}

// CatalogConfig holds rate-sheet catalog configuration
type CatalogConfig struct {
	Dir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftoppm:  getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract: getEnv("OCR_TESSERACT", "tesseract"),
			DPI:       getEnvAsInt("OCR_DPI", 300),
			MaxPages:  getEnvAsInt("OCR_MAX_PAGES", 40),
			Language:  getEnv("OCR_LANGUAGE", "eng"),
		},
		Embedding: EmbeddingConfig{
			BaseURL:      getEnv("EMBEDDING_API_BASE", "http://localhost:11434/v1"),
			APIKey:       getEnv("EMBEDDING_API_KEY", ""),
			Model:        getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Dimension:    getEnvAsInt("EMBEDDING_DIMENSION", 1536),
			MaxBatchSize: getEnvAsInt("EMBEDDING_MAX_BATCH_SIZE", 20),
			MaxRetries:   getEnvAsInt("EMBEDDING_MAX_RETRIES", 3),
			Timeout:      getEnvAsDuration("EMBEDDING_TIMEOUT", 30*time.Second),
			CacheDir:     getEnv("EMBEDDING_CACHE_DIR", "data/embedding_cache"),
		},
		LLM: LLMConfig{
			BaseURL:        getEnv("LLM_API_BASE", "http://localhost:11434/v1"),
			APIKey:         getEnv("LLM_API_KEY", ""),
			PrimaryModel:   getEnv("LLM_PRIMARY_MODEL", "llama3.1:8b"),
			SecondaryModel: getEnv("LLM_SECONDARY_MODEL", "mistral:7b"),
			Temperature:    getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 256),
			Timeout:        getEnvAsDuration("LLM_TIMEOUT", 20*time.Second),
			MinConfidence:  getEnvAsFloat("LLM_MIN_CONFIDENCE", 0.7),
		},
		Verifier: VerifierConfig{
			HospitalThreshold:    getEnvAsFloat("VERIFIER_HOSPITAL_THRESHOLD", 0.50),
			CategoryHard:         getEnvAsFloat("VERIFIER_CATEGORY_HARD", 0.70),
			CategorySoft:         getEnvAsFloat("VERIFIER_CATEGORY_SOFT", 0.50),
			HybridAccept:         getEnvAsFloat("VERIFIER_HYBRID_ACCEPT", 0.60),
			SemanticAutoAccept:   getEnvAsFloat("VERIFIER_SEMANTIC_AUTOACCEPT", 0.85),
			SemanticMinForLLM:    getEnvAsFloat("VERIFIER_SEMANTIC_MIN_FOR_LLM", 0.55),
			LLMBandLow:           getEnvAsFloat("VERIFIER_LLM_BAND_LOW", 0.70),
			LLMBandHigh:          getEnvAsFloat("VERIFIER_LLM_BAND_HIGH", 0.85),
			TopK:                 getEnvAsInt("VERIFIER_TOP_K", 3),
			WeightSemantic:       getEnvAsFloat("VERIFIER_WEIGHT_SEMANTIC", 0.6),
			WeightTokenOverlap:   getEnvAsFloat("VERIFIER_WEIGHT_TOKEN_OVERLAP", 0.3),
			WeightContainment:    getEnvAsFloat("VERIFIER_WEIGHT_CONTAINMENT", 0.1),
			FinancialToleranceRs: getEnvAsFloat("VERIFIER_FINANCIAL_TOLERANCE", 0.01),
		},
		Pipeline: PipelineConfig{
			UploadsDir:             getEnv("UPLOADS_DIR", "uploads"),
			LeaseTTL:               getEnvAsDuration("QUEUE_LEASE_TTL", 10*time.Minute),
			ReconcileInterval:      getEnvAsDuration("QUEUE_RECONCILE_INTERVAL", 30*time.Second),
			StaleProcessingTimeout: getEnvAsDuration("QUEUE_STALE_PROCESSING_TIMEOUT", time.Hour),
		},
		Retention: RetentionConfig{
			RetentionDays:   getEnvAsInt("BILL_RETENTION_DAYS", 30),
			CleanupInterval: getEnvAsDuration("BILL_RETENTION_CLEANUP_INTERVAL", time.Hour),
		},
		Catalog: CatalogConfig{
			Dir: getEnv("TIEUP_DIR", "data/tieups"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
