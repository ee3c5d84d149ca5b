package config

import (
	"time"

	"github.com/spf13/viper"
)

// envAliases maps config keys to the plain variable names deployments
// already export.
var envAliases = map[string]string{
	"data.mongodb.uri": "MONGO_URI",
	"auth.jwt.secret":  "JWT_SECRET",
	"server.port":      "PORT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "studyverse")
	v.SetDefault("run_mode", "dev")
	v.SetDefault("timezone", "Local")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	v.SetDefault("auth.jwt.expire", 24*time.Hour)

	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("data.driver", DriverMongo)
	v.SetDefault("data.mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("data.mongodb.database", "studyverse")
	v.SetDefault("data.mongodb.timeout", 5*time.Second)
}
