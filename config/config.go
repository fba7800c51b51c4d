package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogMode string `json:"log_mode"` // "dev" or "prod"

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Redis struct {
		Addr    string `json:"addr"`    // empty disables the cross-instance bus
		Channel string `json:"channel"` // pub/sub channel for change events
	} `json:"redis"`

	Uploads struct {
		ProcessingSeconds int `json:"processing_seconds"`
	} `json:"uploads"`

	CountsReconcileSeconds int `json:"counts_reconcile_seconds"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults so the zero config still boots
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Redis.Channel == "" {
		c.Redis.Channel = "assetsUpdated"
	}
	if c.Uploads.ProcessingSeconds <= 0 {
		c.Uploads.ProcessingSeconds = 2
	}
	if c.CountsReconcileSeconds <= 0 {
		c.CountsReconcileSeconds = 60
	}

	return c
}
