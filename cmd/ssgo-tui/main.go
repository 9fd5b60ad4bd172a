package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ssgo/internal/advisor"
	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/config"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/tui"
)

func main() {
	policyFile := flag.String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
	logFile := flag.String("log-file", "", "Write debug logs to this file")
	model := flag.String("model", advisor.DefaultModel, "Gemini model name")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ssgo-tui [flags] [scenario-file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	_ = godotenv.Load()

	logger := zap.NewNop()
	if *logFile != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logFile}
		cfg.ErrorOutputPaths = []string{*logFile}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	if *policyFile == "" && fileExists(config.DefaultPolicyFile) {
		*policyFile = config.DefaultPolicyFile
	}

	params := domain.DefaultParameters()
	registry := config.NewPolicyRegistry()
	policyYear := 0

	if flag.NArg() > 0 {
		scenario, reg, err := config.NewInputParser().LoadFromFileWithPolicies(flag.Arg(0), *policyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		params, registry, policyYear = scenario.Parameters, reg, scenario.PolicyYear
	} else if *policyFile != "" {
		if err := registry.LoadFile(*policyFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	policy, err := registry.Resolve(policyYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var adv advisor.Advisor = advisor.Offline{}
	if g, err := advisor.NewGeminiAdvisor(context.Background(), advisor.APIKeyFromEnv(), *model, logger); err == nil {
		adv = g
	} else {
		logger.Warn("advisory service disabled", zap.Error(err))
	}

	engine := calculation.NewEngine()
	engine.SetLogger(logger.Sugar())

	m := tui.NewModel(tui.Config{
		Engine:  engine,
		Policy:  policy,
		Params:  params,
		Advisor: adv,
		Logger:  logger,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}
