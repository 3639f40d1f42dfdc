package config

import (
    "fmt"
    "os"

    "github.com/joho/godotenv"
)

type Config struct {
    Env             string
    ListenAddr      string
    DatabaseURL     string
    DispatchWorkers int
    WebhookBaseURL  string
    CatalogPath     string
    LogLevel        string
    LogFormat       string
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func Load() (Config, error) {
    // Local development convenience; a missing .env is not an error.
    _ = godotenv.Load()

    cfg := Config{
        Env:             getenv("APP_ENV", "development"),
        ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
        DatabaseURL:     os.Getenv("DATABASE_URL"),
        DispatchWorkers: getenvInt("DISPATCH_WORKERS", 0),
        WebhookBaseURL:  os.Getenv("WEBHOOK_BASE_URL"),
        CatalogPath:     os.Getenv("AUTOMATION_CATALOG"),
        LogLevel:        getenv("LOG_LEVEL", "info"),
        LogFormat:       getenv("LOG_FORMAT", "text"),
    }
    if cfg.DatabaseURL == "" {
        // Not fatal for early local runs; warn via error value so callers can decide.
        return cfg, fmt.Errorf("DATABASE_URL not set")
    }
    return cfg, nil
}

func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        var out int
        _, err := fmt.Sscanf(v, "%d", &out)
        if err == nil { return out }
    }
    return def
}
