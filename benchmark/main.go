// Package main provides a performance benchmarking tool for the Faithboard CLI.
// It measures execution times of the report commands against a directory of
// exported source databases, running each command multiple times with history
// disabled and with SQLite history, treating the first successful run as cold
// and averaging the rest as warm, and writes a CSV for documentation.
//
// Prerequisites:
// - faithboard binary installed and available in PATH
// - A data directory holding collection.anki2, statistics.sqlite3, prayer.db and arc/
//
// Usage: go run benchmark/main.go [data-dir]
//
//	data-dir: Directory containing the source exports
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-history average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataDir       string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	Sources       map[string]string // flag -> file under DataDir
	Commands      [][]string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		DataDir:       os.Args[1],
		Timeout:       2 * time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		Sources: map[string]string{
			"--anki-path":     "collection.anki2",
			"--koreader-path": "statistics.sqlite3",
			"--prayer-path":   "prayer.db",
			"--arc-path":      "arc",
		},
		Commands: [][]string{
			{"books"},
			{"daily"},
			{"weekly"},
			{"faith", "daily"},
			{"faith", "weekly"},
			{"places"},
			{"chart", "bible", "--output", "png", "--output-file", filepath.Join(os.TempDir(), "faithboard_benchmark.png")},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Start from an empty history
	fmt.Printf("Clearing history...\n")
	clearCmd := exec.Command("faithboard", "history", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("History cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the faithboard binary and the source exports exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("faithboard"); err != nil {
		return fmt.Errorf("faithboard binary not found in PATH")
	}

	for flag, name := range config.Sources {
		path := filepath.Join(config.DataDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("source for %s not found at %s", flag, path)
		}
	}

	return nil
}

// sourceArgs turns the configured sources into flags.
func sourceArgs(config BenchmarkConfig) []string {
	var args []string
	for flag, name := range config.Sources {
		args = append(args, flag, filepath.Join(config.DataDir, name))
	}
	return args
}

// runBenchmarks executes every configured command
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d commands, %v timeout, no-history: %d runs, history: %d runs\n",
		len(config.Commands), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	for _, command := range config.Commands {
		results = append(results, runBenchmarkSuite(config, command))
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, command []string) BenchmarkResult {
	name := commandName(command)
	fmt.Printf("Running %s\n", name)

	// Helper to run a benchmark phase
	runPhase := func(historyBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, historyBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: History disabled
	_, noHistoryAvg := runPhase("none", config.NoHistoryRuns, "No-history")

	// Phase 2: SQLite history
	coldTime, warmAvg := runPhase("sqlite", config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Command:       name,
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a command multiple times with the given history backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command []string, historyBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, command...)
	args = append(args, "--history-backend", historyBackend)
	args = append(args, sourceArgs(config)...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "faithboard", args...).CombinedOutput()
		elapsed := time.Since(start)
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil && !timedOut {
			times = append(times, elapsed.Seconds())
		} else if !timedOut {
			fmt.Printf("    run %d failed: %v\n%s", run, err, output)
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// commandName is the command without its flags.
func commandName(command []string) string {
	var words []string
	for _, w := range command {
		if strings.HasPrefix(w, "-") {
			break
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("faithboard_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-14s: No-history: %s, Cold: %s, Warm: %s\n", result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime)
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
