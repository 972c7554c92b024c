package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	CodePrefix string
	RatesCSV   string
	FeesXLSX   string
	MsgGateway string
	MsgAPIKey  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Africa/Lagos"),
		DBPath:     get("DB_PATH", "washline.db"),
		CodePrefix: get("CODE_PREFIX", "WL"),
		RatesCSV:   get("RATES_CSV", "./Rates.csv"),
		FeesXLSX:   get("FEES_XLSX", "./Fees.xlsx"),
		MsgGateway: get("MSG_GATEWAY", ""),
		MsgAPIKey:  get("MSG_API_KEY", ""),
	}
	slog.Info("config loaded", "port", cfg.Port, "db", cfg.DBPath, "prefix", cfg.CodePrefix)
	return cfg
}
