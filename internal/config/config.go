package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DatasetEmbedded = "embedded"
	DatasetPostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from configs/app.env or environment variables.
type Config struct {
	Environment           string        `mapstructure:"ENVIRONMENT"`
	ServerAddress         string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`
	DBSource              string        `mapstructure:"DB_SOURCE"`
	DatasetSource         string        `mapstructure:"DATASET_SOURCE"`
	DepotMode             string        `mapstructure:"DEPOT_MODE"`
	DistanceFormula       string        `mapstructure:"DISTANCE_FORMULA"`
	SolverTimeLimit       time.Duration `mapstructure:"SOLVER_TIME_LIMIT"`
	FirstSolutionStrategy string        `mapstructure:"FIRST_SOLUTION_STRATEGY"`
	// SolveRateLimit is the sustained number of solves per second; 0 disables limiting.
	SolveRateLimit float64 `mapstructure:"SOLVE_RATE_LIMIT"`
	SolveBurst     int     `mapstructure:"SOLVE_BURST"`
}

var defaults = map[string]any{
	"ENVIRONMENT":             "production",
	"SERVER_ADDRESS":          ":8080",
	"LOG_LEVEL":               "info",
	"DB_SOURCE":               "",
	"DATASET_SOURCE":          DatasetEmbedded,
	"DEPOT_MODE":              "include",
	"DISTANCE_FORMULA":        "geodesic",
	"SOLVER_TIME_LIMIT":       "900s",
	"FIRST_SOLUTION_STRATEGY": "path_cheapest_arc",
	"SOLVE_RATE_LIMIT":        0,
	"SOLVE_BURST":             2,
}

// LoadConfig reads app.env from path, falling back to defaults and environment variables.
// A .env file in the working directory is loaded into the environment first when present.
func LoadConfig(path string) (config Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: decode: %w", err)
	}

	config.DBSource = trimOptionalQuotes(config.DBSource)

	err = config.Validate()
	return config, err
}

// Validate rejects unknown enumerated values.
func (c Config) Validate() error {
	switch c.DatasetSource {
	case DatasetEmbedded:
	case DatasetPostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required when DATASET_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown DATASET_SOURCE %q", c.DatasetSource)
	}

	switch c.DepotMode {
	case "include", "exclude":
	default:
		return fmt.Errorf("config: unknown DEPOT_MODE %q", c.DepotMode)
	}

	switch c.DistanceFormula {
	case "geodesic", "haversine":
	default:
		return fmt.Errorf("config: unknown DISTANCE_FORMULA %q", c.DistanceFormula)
	}

	switch c.FirstSolutionStrategy {
	case "path_cheapest_arc", "index_order":
	default:
		return fmt.Errorf("config: unknown FIRST_SOLUTION_STRATEGY %q", c.FirstSolutionStrategy)
	}

	if c.SolverTimeLimit < 0 {
		return fmt.Errorf("config: SOLVER_TIME_LIMIT must not be negative, got %s", c.SolverTimeLimit)
	}

	if c.SolveRateLimit < 0 || c.SolveBurst < 0 {
		return fmt.Errorf("config: SOLVE_RATE_LIMIT and SOLVE_BURST must not be negative")
	}
	if c.SolveRateLimit > 0 && c.SolveBurst == 0 {
		return errors.New("config: SOLVE_BURST must be positive when SOLVE_RATE_LIMIT is set")
	}

	return nil
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}
