package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported data drivers.
const (
	DriverMongo  = "mongodb"
	DriverMemory = "memory"
)

// Data data config struct
type Data struct {
	Driver  string
	MongoDB *MongoDB
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// getDataConfig returns the data config.
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Driver: strings.ToLower(getStringOrDefault(v, "data.driver", DriverMongo)),
		MongoDB: &MongoDB{
			URI:      v.GetString("data.mongodb.uri"),
			Database: getStringOrDefault(v, "data.mongodb.database", "studyverse"),
			Timeout:  getDurationOrDefault(v, "data.mongodb.timeout", 5*time.Second),
		},
	}
}
