package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/ncobase/studyverse/logging/logger/config"
	"github.com/sirupsen/logrus"
)

const indexTimeout = 5 * time.Second

// ElasticsearchHook ships log entries to an Elasticsearch index.
type ElasticsearchHook struct {
	client   *elasticsearch.Client
	config   *config.Elasticsearch
	hostname string
}

// NewElasticsearchHook connects to the configured cluster and returns the
// hook. The cluster must answer an info request.
func NewElasticsearchHook(cfg *config.Elasticsearch) (*ElasticsearchHook, error) {
	if cfg == nil || len(cfg.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch config is empty")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch connection error: %s", res.Status())
	}

	hostname, _ := os.Hostname()
	return &ElasticsearchHook{client: client, config: cfg, hostname: hostname}, nil
}

// Levels returns all log levels
func (h *ElasticsearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire indexes one entry.
func (h *ElasticsearchHook) Fire(entry *logrus.Entry) error {
	body, err := json.Marshal(h.document(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	res, err := h.client.Index(
		h.config.BuildIndexName(entry.Time),
		bytes.NewReader(body),
		h.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to index log entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch index error: %s", res.Status())
	}
	return nil
}

func (h *ElasticsearchHook) document(entry *logrus.Entry) map[string]any {
	doc := make(map[string]any, len(entry.Data)+4)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		doc[k] = v
	}
	doc["@timestamp"] = entry.Time.UTC().Format(time.RFC3339Nano)
	doc["level"] = entry.Level.String()
	doc["message"] = entry.Message
	if h.hostname != "" {
		doc["hostname"] = h.hostname
	}
	return doc
}
