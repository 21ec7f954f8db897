package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	// crossover core tunables
	RegistryFile   string  // YAML family tables, empty = built-ins
	WeightsFile    string  // YAML scorer weights, empty = defaults
	FuzzyThreshold float64 // similarity floor for model-number suggestions
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	thr, _ := strconv.ParseFloat(getenv("FUZZY_THRESHOLD", "0.72"), 64)
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           port,
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        getenv("LOG_FILE", "logs/crossover-service.log"),
		MaxUploadMB:    mb,
		RegistryFile:   getenv("REGISTRY_FILE", ""),
		WeightsFile:    getenv("WEIGHTS_FILE", ""),
		FuzzyThreshold: thr,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
