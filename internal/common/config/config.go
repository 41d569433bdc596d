package config

import (
	"os"
	"strconv"
	"strings"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	DBPath      string
	CatalogPath string
	CORSOrigins []string

	RoomSize           float64
	HistoryLimit       int
	GridSnap           bool
	CollisionDetection bool
	PreviewSize        int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		DBPath:      getEnv("PLANNER_DB_PATH", "data/db/planner.db"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),

		RoomSize:           getEnvAsFloat("ROOM_SIZE", 10),
		HistoryLimit:       getEnvAsInt("HISTORY_LIMIT", 100),
		GridSnap:           getEnvAsBool("GRID_SNAP", false),
		CollisionDetection: getEnvAsBool("COLLISION_DETECTION", true),
		PreviewSize:        getEnvAsInt("PREVIEW_SIZE", 512),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsList(key string, defaultVal []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
