package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eshaffer321/monarch-mcp/internal/config"
	"github.com/eshaffer321/monarch-mcp/internal/logger"
	"github.com/eshaffer321/monarch-mcp/internal/tools"
	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/rs/zerolog"
)

// ValidatorConfig holds configuration for the validator
type ValidatorConfig struct {
	OutputDir   string
	Verbose     bool
	ToolsToTest []string
}

// ValidationResult is the outcome of one live tool call
type ValidationResult struct {
	Tool      string        `json:"tool"`
	Arguments interface{}   `json:"arguments,omitempty"`
	Passed    bool          `json:"passed"`
	Summary   string        `json:"summary,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// ValidationReport represents the full validation report
type ValidationReport struct {
	Timestamp   time.Time          `json:"timestamp"`
	TotalTests  int                `json:"total_tests"`
	Passed      int                `json:"passed"`
	Failed      int                `json:"failed"`
	SuccessRate float64            `json:"success_rate"`
	Results     []ValidationResult `json:"results"`
}

// toolRunner is the part of the executor the validator drives
type toolRunner interface {
	Execute(ctx context.Context, name string, args tools.Arguments) (*tools.Envelope, error)
}

func main() {
	os.Exit(run())
}

func run() int {
	vcfg := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	level := cfg.Log.Level
	if vcfg.Verbose {
		level = "debug"
	}
	log := logger.New(os.Stderr, level, logger.FormatHuman)

	client, err := monarch.NewClient(cfg.ClientOptions(logger.NewKV(log)))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create client")
		return 1
	}
	defer client.Close()

	if err := os.MkdirAll(vcfg.OutputDir, 0755); err != nil {
		log.Error().Err(err).Msg("Failed to create output directory")
		return 1
	}

	validator := NewValidator(vcfg, tools.NewExecutor(client, log), log)
	report := validator.Run(context.Background())

	reportPath := filepath.Join(vcfg.OutputDir, fmt.Sprintf("validation_report_%d.json", report.Timestamp.Unix()))
	if err := saveReport(report, reportPath); err != nil {
		log.Error().Err(err).Msg("Failed to save report")
		return 1
	}

	printSummary(report, reportPath)

	if report.Failed > 0 {
		return 1
	}
	return 0
}

func parseFlags() *ValidatorConfig {
	cfg := &ValidatorConfig{}

	flag.StringVar(&cfg.OutputDir, "output", "./validation_results", "Output directory for results")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	toolList := flag.String("tools", "", "Comma-separated list of tools to run (empty for all)")

	flag.Parse()

	if *toolList != "" {
		for _, name := range strings.Split(*toolList, ",") {
			cfg.ToolsToTest = append(cfg.ToolsToTest, strings.TrimSpace(name))
		}
	} else {
		for _, def := range tools.Catalog() {
			cfg.ToolsToTest = append(cfg.ToolsToTest, def.Name)
		}
	}

	return cfg
}

// Validator runs catalog tools against a live account
type Validator struct {
	config *ValidatorConfig
	runner toolRunner
	log    zerolog.Logger
	now    func() time.Time
}

// NewValidator creates a new validator
func NewValidator(cfg *ValidatorConfig, runner toolRunner, log zerolog.Logger) *Validator {
	return &Validator{
		config: cfg,
		runner: runner,
		log:    log,
		now:    time.Now,
	}
}

// Run calls every configured tool once. Tools that need an account id use
// the first account returned by get_accounts.
func (v *Validator) Run(ctx context.Context) *ValidationReport {
	report := &ValidationReport{
		Timestamp: v.now(),
		Results:   make([]ValidationResult, 0, len(v.config.ToolsToTest)),
	}

	accountID := v.firstAccountID(ctx)

	for _, name := range v.config.ToolsToTest {
		v.log.Debug().Str("tool", name).Msg("Testing tool")

		result := v.testTool(ctx, name, sampleArguments(name, accountID, report.Timestamp))
		report.Results = append(report.Results, result)

		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	report.TotalTests = len(report.Results)
	if report.TotalTests > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.TotalTests) * 100
	}

	return report
}

func (v *Validator) firstAccountID(ctx context.Context) string {
	envelope, err := v.runner.Execute(ctx, tools.GetAccounts, tools.Arguments{})
	if err != nil {
		v.log.Warn().Err(err).Msg("Could not list accounts; account tools will fail")
		return ""
	}
	accounts, _ := envelope.Data.([]*monarch.Account)
	if len(accounts) == 0 {
		return ""
	}
	return accounts[0].ID
}

// testTool runs a single tool
func (v *Validator) testTool(ctx context.Context, name string, args tools.Arguments) ValidationResult {
	start := time.Now()
	result := ValidationResult{Tool: name, Arguments: args}

	envelope, err := v.runner.Execute(ctx, name, args)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		v.log.Warn().Str("tool", name).Err(err).Msg("Tool failed")
		return result
	}

	result.Passed = envelope.Success && envelope.Data != nil
	result.Summary = envelope.Summary
	if !result.Passed {
		result.Error = "tool returned an empty envelope"
	}
	return result
}

// sampleArguments picks arguments that exercise each tool over the last
// thirty days.
func sampleArguments(name, accountID string, now time.Time) tools.Arguments {
	end := now.Format(monarch.DateLayout)
	start := now.AddDate(0, 0, -30).Format(monarch.DateLayout)

	switch name {
	case tools.GetAccountBalance:
		return tools.Arguments{"accountId": accountID}
	case tools.GetAccountSnapshots:
		return tools.Arguments{"accountId": accountID, "startDate": start, "endDate": end}
	case tools.GetTransactions:
		return tools.Arguments{"limit": 10, "startDate": start, "endDate": end}
	case tools.GetSpendingByCategory:
		return tools.Arguments{"startDate": start, "endDate": end}
	case tools.SearchTransactions:
		return tools.Arguments{"minAmount": 1, "limit": 5}
	case tools.GetMonthlySummary:
		prev := now.AddDate(0, -1, 0)
		return tools.Arguments{"year": prev.Year(), "month": int(prev.Month())}
	case tools.GetPortfolio:
		return tools.Arguments{"startDate": start, "endDate": end}
	default:
		return tools.Arguments{}
	}
}

func saveReport(report *ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(report *ValidationReport, path string) {
	fmt.Println("\n=== Validation Report ===")
	fmt.Printf("Total Tests: %d\n", report.TotalTests)
	fmt.Printf("Passed: %d\n", report.Passed)
	fmt.Printf("Failed: %d\n", report.Failed)
	fmt.Printf("Success Rate: %.1f%%\n", report.SuccessRate)

	if report.Failed > 0 {
		fmt.Println("\nFailed Tests:")
		for _, result := range report.Results {
			if !result.Passed {
				fmt.Printf("  - %s: %s\n", result.Tool, result.Error)
			}
		}
	}

	fmt.Printf("\nReport saved to: %s\n", path)
}
