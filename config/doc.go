// Package config loads the service configuration from a YAML file, an
// optional .env file and STUDYVERSE_ prefixed environment variables.
package config
