package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/feral-file/ff-position-api/internal/adapter"
)

const (
	defaultAPIURL = "http://localhost:8080"
)

type Config struct {
	APIURL      string
	Accounts    []string
	Templates   []string
	Iterations  int           // Number of requests per account, template and source
	Concurrency int           // Number of concurrent requests
	Timeout     time.Duration // Timeout of each request
	OutputFile  string        // Output markdown file path (optional)
	Debug       bool
}

// Source names the query path selected with enable_index
type Source string

const (
	SourceIndexed Source = "indexed"
	SourceLive    Source = "live"
)

// Query is one position list request
type Query struct {
	Account  string
	Template string
	Source   Source
}

// Sample is the outcome of one request
type Sample struct {
	Query     Query
	Iteration int
	Duration  time.Duration
	Err       error
	Body      json.RawMessage
}

// SourceStats aggregates the samples of one source
type SourceStats struct {
	Source    Source
	Requests  int
	Failures  int
	Latencies []time.Duration
}

// Report is the result of a benchmark run
type Report struct {
	StartTime  time.Time
	Duration   time.Duration
	Sources    map[Source]*SourceStats
	Compared   int
	Mismatches []string
	Errors     []string
}

func main() {
	cfg := parseFlags()

	if len(cfg.Accounts) == 0 {
		fmt.Println("Error: at least one account is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Benchmarking %s\n", cfg.APIURL)
	fmt.Printf("Accounts: %d, templates: %s, iterations: %d, concurrency: %d\n",
		len(cfg.Accounts), strings.Join(cfg.Templates, ","), cfg.Iterations, cfg.Concurrency)

	client := adapter.NewHTTPClient(cfg.Timeout)
	report := run(ctx, client, adapter.NewJCS(), cfg)

	fmt.Println("\n" + strings.Repeat("=", 80))
	if ctx.Err() != nil {
		fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	} else {
		fmt.Println("BENCHMARK RESULTS")
	}
	fmt.Println(strings.Repeat("=", 80))
	printReport(report)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, report); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}

	if len(report.Mismatches) > 0 {
		os.Exit(2)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	var accounts, templates string
	flag.StringVar(&cfg.APIURL, "api-url", defaultAPIURL, "Position API base URL")
	flag.StringVar(&accounts, "accounts", "", "Comma separated account addresses (required)")
	flag.StringVar(&templates, "templates", "bond,share,membership,coupon", "Comma separated templates")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every request")
	flag.IntVar(&cfg.Iterations, "iterations", 5, "Requests per account, template and source (default: 5)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 4, "Number of concurrent requests (default: 4)")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Timeout for each request in seconds (default: 30)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
	cfg.Accounts = splitList(accounts)
	cfg.Templates = splitList(templates)

	if cfg.Iterations <= 0 {
		cfg.Iterations = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Concurrency > 32 {
		cfg.Concurrency = 32 // Live reads fan out to the ledger node
	}

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.APIURL == defaultAPIURL && fileCfg.APIURL != "" {
				cfg.APIURL = fileCfg.APIURL
			}
			if len(cfg.Accounts) == 0 {
				cfg.Accounts = fileCfg.Accounts
			}
			if templates == "" && len(fileCfg.Templates) > 0 {
				cfg.Templates = fileCfg.Templates
			}
		}
	}

	return cfg
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// positionsURL builds the list URL of a query
func positionsURL(apiURL string, q Query) string {
	return fmt.Sprintf("%s/api/v1/positions/%s/%s?enable_index=%t",
		strings.TrimRight(apiURL, "/"),
		url.PathEscape(q.Account),
		url.PathEscape(q.Template),
		q.Source == SourceIndexed,
	)
}

// queries expands the configuration into the request plan, both sources of a pair adjacent
func queries(cfg *Config) []Query {
	var plan []Query
	for _, account := range cfg.Accounts {
		for _, template := range cfg.Templates {
			plan = append(plan,
				Query{Account: account, Template: template, Source: SourceIndexed},
				Query{Account: account, Template: template, Source: SourceLive},
			)
		}
	}
	return plan
}

// run executes the plan on a bounded pool and compares the first response of each source pair
func run(ctx context.Context, client adapter.HTTPClient, canonical adapter.JCS, cfg *Config) *Report {
	report := &Report{
		StartTime: time.Now(),
		Sources: map[Source]*SourceStats{
			SourceIndexed: {Source: SourceIndexed},
			SourceLive:    {Source: SourceLive},
		},
	}

	pool := pond.NewResultPool[Sample](cfg.Concurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i := 0; i < cfg.Iterations; i++ {
		for _, q := range queries(cfg) {
			group.Submit(func() Sample {
				return fetch(ctx, client, cfg, q, i)
			})
		}
	}

	samples, err := group.Wait()
	report.Duration = time.Since(report.StartTime)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
	}

	first := make(map[Query]json.RawMessage)
	for _, sample := range samples {
		stats := report.Sources[sample.Query.Source]
		stats.Requests++
		if sample.Err != nil {
			stats.Failures++
			report.Errors = append(report.Errors, fmt.Sprintf("%s %s %s: %v", sample.Query.Source, sample.Query.Account, sample.Query.Template, sample.Err))
			continue
		}
		stats.Latencies = append(stats.Latencies, sample.Duration)
		if sample.Iteration == 0 {
			first[sample.Query] = sample.Body
		}
	}

	for _, q := range queries(cfg) {
		if q.Source != SourceIndexed {
			continue
		}
		indexed, ok := first[q]
		if !ok {
			continue
		}
		live, ok := first[Query{Account: q.Account, Template: q.Template, Source: SourceLive}]
		if !ok {
			continue
		}

		report.Compared++
		equal, err := sameDocument(canonical, indexed, live)
		if err != nil || !equal {
			report.Mismatches = append(report.Mismatches, fmt.Sprintf("%s/%s", q.Account, q.Template))
		}
	}

	return report
}

func fetch(ctx context.Context, client adapter.HTTPClient, cfg *Config, q Query, iteration int) Sample {
	start := time.Now()
	var body json.RawMessage
	err := client.Get(ctx, positionsURL(cfg.APIURL, q), &body)
	sample := Sample{
		Query:     q,
		Iteration: iteration,
		Duration:  time.Since(start),
		Err:       err,
		Body:      body,
	}

	if cfg.Debug {
		fmt.Printf("%-7s %s %-10s %s err=%v\n", q.Source, q.Account, q.Template, formatDuration(sample.Duration), err)
	}
	return sample
}

// sameDocument compares two JSON documents in canonical form
func sameDocument(canonical adapter.JCS, a, b json.RawMessage) (bool, error) {
	ca, err := canonical.Transform(a)
	if err != nil {
		return false, err
	}
	cb, err := canonical.Transform(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}

func printReport(report *Report) {
	fmt.Printf("\n📊 Run\n")
	fmt.Printf("   Started:  %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Printf("   Duration: %s\n", formatDuration(report.Duration))

	for _, source := range []Source{SourceIndexed, SourceLive} {
		stats := report.Sources[source]
		succeeded := stats.Requests - stats.Failures
		fmt.Printf("\n%s %s\n", statusEmoji(succeeded, stats.Failures, 0), strings.ToUpper(string(source)))
		fmt.Printf("   Requests: %d (failed: %d, %s)\n", stats.Requests, stats.Failures, percentageString(stats.Failures, stats.Requests))
		fmt.Printf("   Rate:     %s\n", formatRate(succeeded, report.Duration))
		fmt.Printf("   p50:      %s\n", formatDuration(percentile(stats.Latencies, 50)))
		fmt.Printf("   p95:      %s\n", formatDuration(percentile(stats.Latencies, 95)))
		fmt.Printf("   max:      %s\n", formatDuration(percentile(stats.Latencies, 100)))
	}

	fmt.Printf("\n%s Equivalence: %d compared, %d mismatched\n",
		statusEmoji(report.Compared, 0, len(report.Mismatches)), report.Compared, len(report.Mismatches))
	for _, mismatch := range report.Mismatches {
		fmt.Printf("   - %s\n", mismatch)
	}

	if len(report.Errors) > 0 {
		fmt.Printf("\n⚠️  Errors (%d)\n", len(report.Errors))
		for i, e := range report.Errors {
			if i == 10 {
				fmt.Printf("   ... %d more\n", len(report.Errors)-10)
				break
			}
			fmt.Printf("   - %s\n", e)
		}
	}
}

func writeMarkdownReport(filepath string, report *Report) error {
	var sb strings.Builder

	sb.WriteString("# Position API Benchmark\n\n")
	sb.WriteString(fmt.Sprintf("- **Started:** %s\n", report.StartTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Duration:** %s\n\n", formatDuration(report.Duration)))

	sb.WriteString("## Latency\n\n")
	sb.WriteString("| Source | Requests | Failed | Rate | p50 | p95 | max |\n")
	sb.WriteString("|--------|----------|--------|------|-----|-----|-----|\n")
	for _, source := range []Source{SourceIndexed, SourceLive} {
		stats := report.Sources[source]
		sb.WriteString(fmt.Sprintf("| %s | %d | %d (%s) | %s | %s | %s | %s |\n",
			source,
			stats.Requests,
			stats.Failures,
			percentageString(stats.Failures, stats.Requests),
			formatRate(stats.Requests-stats.Failures, report.Duration),
			formatDuration(percentile(stats.Latencies, 50)),
			formatDuration(percentile(stats.Latencies, 95)),
			formatDuration(percentile(stats.Latencies, 100)),
		))
	}

	sb.WriteString("\n## Equivalence\n\n")
	sb.WriteString(fmt.Sprintf("%d pairs compared, %d mismatched.\n", report.Compared, len(report.Mismatches)))
	for _, mismatch := range report.Mismatches {
		sb.WriteString(fmt.Sprintf("- `%s`\n", mismatch))
	}

	return os.WriteFile(filepath, []byte(sb.String()), 0644)
}
