package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-position-api/internal/adapter"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.00s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m 30s",
		},
		{
			name:     "hours",
			duration: 1*time.Hour + 15*time.Minute,
			want:     "1h 15m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestPercentile(t *testing.T) {
	samples := []time.Duration{5, 1, 4, 2, 3, 10, 6, 8, 7, 9}

	assert.Equal(t, time.Duration(5), percentile(samples, 50))
	assert.Equal(t, time.Duration(10), percentile(samples, 95))
	assert.Equal(t, time.Duration(10), percentile(samples, 100))
	assert.Equal(t, time.Duration(1), percentile(samples, 0))
	assert.Equal(t, time.Duration(0), percentile(nil, 50))
	assert.Equal(t, time.Duration(5), samples[0], "input is not reordered")
}

func TestPositionsURL(t *testing.T) {
	q := Query{Account: "0xabc", Template: "bond", Source: SourceIndexed}
	assert.Equal(t, "http://api/api/v1/positions/0xabc/bond?enable_index=true", positionsURL("http://api/", q))

	q.Source = SourceLive
	assert.Equal(t, "http://api/api/v1/positions/0xabc/bond?enable_index=false", positionsURL("http://api", q))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"bond", "coupon"}, splitList(" bond, ,coupon "))
	assert.Nil(t, splitList(""))
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// field order differs between sources, the documents are the same
		if r.URL.Query().Get("enable_index") == "true" {
			_, _ = w.Write([]byte(`{"result_set":{"count":0,"offset":null,"limit":null,"total":0},"positions":[]}`))
			return
		}
		if strings.Contains(r.URL.Path, "/coupon") {
			_, _ = w.Write([]byte(`{"positions":[{"token_address":"0x1","balance":"1"}],"result_set":{"total":1,"count":1,"limit":null,"offset":null}}`))
			return
		}
		_, _ = w.Write([]byte(`{"positions":[],"result_set":{"total":0,"count":0,"limit":null,"offset":null}}`))
	}))
	defer srv.Close()

	cfg := &Config{
		APIURL:      srv.URL,
		Accounts:    []string{"0xabc"},
		Templates:   []string{"bond", "coupon"},
		Iterations:  3,
		Concurrency: 2,
		Timeout:     5 * time.Second,
	}

	report := run(context.Background(), adapter.NewHTTPClient(cfg.Timeout), adapter.NewJCS(), cfg)

	assert.Equal(t, 6, report.Sources[SourceIndexed].Requests)
	assert.Equal(t, 6, report.Sources[SourceLive].Requests)
	assert.Zero(t, report.Sources[SourceLive].Failures)
	assert.Equal(t, 2, report.Compared)
	assert.Equal(t, []string{"0xabc/coupon"}, report.Mismatches)

	output := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, writeMarkdownReport(output, report))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2 pairs compared, 1 mismatched.")
}

func TestRun_CountsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_parameter"}`))
	}))
	defer srv.Close()

	cfg := &Config{
		APIURL:      srv.URL,
		Accounts:    []string{"bad"},
		Templates:   []string{"bond"},
		Iterations:  1,
		Concurrency: 1,
		Timeout:     5 * time.Second,
	}

	report := run(context.Background(), adapter.NewHTTPClient(cfg.Timeout), adapter.NewJCS(), cfg)

	assert.Equal(t, 1, report.Sources[SourceIndexed].Failures)
	assert.Equal(t, 1, report.Sources[SourceLive].Failures)
	assert.Zero(t, report.Compared)
	assert.Len(t, report.Errors, 2)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &BenchmarkConfig{APIURL: "http://api", Accounts: []string{"0xabc"}, Templates: []string{"bond"}}

	require.NoError(t, SaveConfig(path, cfg))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
