package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultIndexName is used when logger.elasticsearch.index_name is empty.
const DefaultIndexName = "studyverse-log"

// Elasticsearch elasticsearch config struct
type Elasticsearch struct {
	Addresses   []string `json:"addresses" yaml:"addresses"`
	Username    string   `json:"username" yaml:"username"`
	Password    string   `json:"password" yaml:"password"`
	IndexName   string   `json:"index_name" yaml:"index_name"`
	RotateDaily bool     `json:"rotate_daily" yaml:"rotate_daily"`
}

// getElasticsearchConfigs reads Elasticsearch configurations
func getElasticsearchConfigs(v *viper.Viper) *Elasticsearch {
	addresses := v.GetStringSlice("logger.elasticsearch.addresses")
	if len(addresses) == 0 {
		return nil
	}
	index := v.GetString("logger.elasticsearch.index_name")
	if index == "" {
		index = DefaultIndexName
	}
	rotate := true
	if v.IsSet("logger.elasticsearch.rotate_daily") {
		rotate = v.GetBool("logger.elasticsearch.rotate_daily")
	}
	return &Elasticsearch{
		Addresses:   addresses,
		Username:    v.GetString("logger.elasticsearch.username"),
		Password:    v.GetString("logger.elasticsearch.password"),
		IndexName:   index,
		RotateDaily: rotate,
	}
}

// BuildIndexName returns the index a log entry written at t goes to.
func (e *Elasticsearch) BuildIndexName(t time.Time) string {
	if !e.RotateDaily {
		return e.IndexName
	}
	return fmt.Sprintf("%s-%s", e.IndexName, t.UTC().Format("2006.01.02"))
}
