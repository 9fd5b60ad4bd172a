package main

import (
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/config"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/output"
	"github.com/spf13/cobra"
)

// loadScenario reads a scenario file together with the policy file named by
// --policy-file, or policy.yaml in the working directory when present.
func loadScenario(cmd *cobra.Command, inputFile string) (*config.Scenario, *config.PolicyRegistry, error) {
	policyFile, _ := cmd.Flags().GetString("policy-file")
	if policyFile == "" && fileExists(config.DefaultPolicyFile) {
		policyFile = config.DefaultPolicyFile
	}
	if policyFile != "" {
		logger.Sugar().Debugf("loading policies from %s", policyFile)
	}
	return config.NewInputParser().LoadFromFileWithPolicies(inputFile, policyFile)
}

// selectPolicy honors --policy-year over the scenario's own policy_year
func selectPolicy(cmd *cobra.Command, scenario *config.Scenario, registry *config.PolicyRegistry) (domain.BenefitPolicy, error) {
	year := scenario.PolicyYear
	if flagYear, _ := cmd.Flags().GetInt("policy-year"); flagYear != 0 {
		year = flagYear
	}
	return registry.Resolve(year)
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode {
		engine.SetLogger(logger.Sugar())
	}
	return engine
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Project benefits for a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, registry, err := loadScenario(cmd, args[0])
		if err != nil {
			return err
		}
		policy, err := selectPolicy(cmd, scenario, registry)
		if err != nil {
			return err
		}

		result, err := newEngine().Simulate(scenario.Parameters, policy)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		f, err := output.GetFormatterByName(formatName)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, output.AvailableFormatterNames())
		}

		report := output.NewReport(scenario.Name, scenario.Parameters, policy, result)

		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			path, err := output.WriteFormatted(f, report, dir, extensionFor(f.Name()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		}

		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func extensionFor(formatter string) string {
	switch formatter {
	case "console":
		return "txt"
	default:
		return formatter
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := loadScenario(cmd, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid\n", args[0])
		return nil
	},
}

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the available benefit policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := config.NewPolicyRegistry()
		policyFile, _ := cmd.Flags().GetString("policy-file")
		if policyFile == "" && fileExists(config.DefaultPolicyFile) {
			policyFile = config.DefaultPolicyFile
		}
		if policyFile != "" {
			if err := registry.LoadFile(policyFile); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for _, p := range registry.All() {
			fmt.Fprintf(out, "%d  FRA %d  earnings limit %s  %s\n",
				p.Year, p.FullRetirementAge, output.FormatDollars(p.EarningsTest.AnnualEarningsLimit), p.Description)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, yaml, html)")
	simulateCmd.Flags().Int("policy-year", 0, "Benefit policy year (default: scenario policy_year or latest)")
	simulateCmd.Flags().String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
	simulateCmd.Flags().String("output-dir", "", "Write the report to a timestamped file in this directory")

	validateCmd.Flags().String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
	policiesCmd.Flags().String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
}
