package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server http server config struct
type Server struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORS         *CORS
}

// CORS cross origin config struct
type CORS struct {
	AllowedOrigins []string
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// getServerConfig returns the server config.
func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:         v.GetString("server.host"),
		Port:         v.GetInt("server.port"),
		ReadTimeout:  getDurationOrDefault(v, "server.read_timeout", 15*time.Second),
		WriteTimeout: getDurationOrDefault(v, "server.write_timeout", 15*time.Second),
		CORS: &CORS{
			AllowedOrigins: v.GetStringSlice("server.cors.allowed_origins"),
		},
	}
}
