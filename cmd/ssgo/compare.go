package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/ssgo/internal/compare"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare one scenario under several benefit policy years",
	Long: `Run the same scenario under several policy years and report the differences
against the first one.

Examples:
  ssgo compare scenario.yaml --policies 2025,2026 --policy-file policy.yaml
  ssgo compare scenario.yaml --policies 2024,2026 --format csv
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, registry, err := loadScenario(cmd, args[0])
		if err != nil {
			return err
		}

		yearsStr, _ := cmd.Flags().GetString("policies")
		years, err := parseYears(yearsStr)
		if err != nil {
			return err
		}
		if len(years) == 0 {
			years = registry.Years()
		}

		policies := make([]domain.BenefitPolicy, 0, len(years))
		for _, y := range years {
			p, err := registry.Get(y)
			if err != nil {
				return err
			}
			policies = append(policies, p)
		}

		ce := compare.NewCompareEngine(newEngine())
		set, err := ce.ComparePolicies(cmd.Context(), scenario.Parameters, policies)
		if err != nil {
			return err
		}
		set.InputPath = args[0]

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "table", "console":
			fmt.Fprint(out, (&compare.TableFormatter{}).Format(set))
		case "compact":
			fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(set))
		case "csv":
			s, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
		case "json":
			s, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
		default:
			return fmt.Errorf("unsupported compare format %q (table, compact, csv, json)", format)
		}
		return nil
	},
}

// parseYears splits "2025, 2026" into policy years
func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid policy year %q", part)
		}
		years = append(years, y)
	}
	return years, nil
}

func init() {
	compareCmd.Flags().String("policies", "", "Comma-separated policy years, base first (default: all loaded)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
}
