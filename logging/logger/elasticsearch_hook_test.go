package logger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ncobase/studyverse/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexed struct {
	path string
	doc  map[string]any
}

// fakeCluster answers like Elasticsearch and records indexed documents.
func fakeCluster(t *testing.T) (*httptest.Server, func() []indexed) {
	t.Helper()
	var (
		mu   sync.Mutex
		docs []indexed
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet && r.URL.Path == "/" {
			_, _ = io.WriteString(w, `{"version":{"number":"8.18.0"},"tagline":"You Know, for Search"}`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var doc map[string]any
		_ = json.Unmarshal(body, &doc)
		mu.Lock()
		docs = append(docs, indexed{path: r.URL.Path, doc: doc})
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []indexed {
		mu.Lock()
		defer mu.Unlock()
		return append([]indexed(nil), docs...)
	}
}

func TestElasticsearchHookIndexesMaskedEntries(t *testing.T) {
	srv, docs := fakeCluster(t)

	l, _ := newBufferedLogger(t, &config.Config{
		Level: int(logrus.InfoLevel),
		Desensitization: &config.Desensitization{
			Enabled:         true,
			SensitiveFields: []string{"password"},
			MaskChar:        "*",
			FixedMaskLength: 8,
		},
		Elasticsearch: &config.Elasticsearch{
			Addresses:   []string{srv.URL},
			IndexName:   "studyverse-log",
			RotateDaily: true,
		},
	})

	l.Info(context.Background(), "user registered", "email", "ada@example.com", "password", "hunter22")

	got := docs()
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].path, "/studyverse-log-"), got[0].path)
	assert.Equal(t, "user registered", got[0].doc["message"])
	assert.Equal(t, "info", got[0].doc["level"])
	assert.Equal(t, "ada@example.com", got[0].doc["email"])
	assert.Equal(t, "********", got[0].doc["password"])
}

func TestElasticsearchHookRequiresAddresses(t *testing.T) {
	_, err := NewElasticsearchHook(&config.Elasticsearch{})
	assert.Error(t, err)
}

func TestBuildIndexName(t *testing.T) {
	at := time.Date(2024, 5, 7, 23, 0, 0, 0, time.UTC)
	daily := &config.Elasticsearch{IndexName: "logs", RotateDaily: true}
	fixed := &config.Elasticsearch{IndexName: "logs"}

	assert.Equal(t, "logs-2024.05.07", daily.BuildIndexName(at))
	assert.Equal(t, "logs", fixed.BuildIndexName(at))
}
