package main

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/ssgo/internal/advisor"
	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [input-file]",
	Short: "Ask the advisory model for a strategy audit of a scenario",
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

		var adv advisor.Advisor = advisor.Offline{}
		model, _ := cmd.Flags().GetString("model")
		if g, err := advisor.NewGeminiAdvisor(cmd.Context(), advisor.APIKeyFromEnv(), model, logger); err == nil {
			adv = g
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Requesting strategy audit (%s)\n", describeAdvisor(adv))

		timeout, _ := cmd.Flags().GetDuration("timeout")
		insight := advisor.Fetch(cmd.Context(), adv, advisor.NewRequest(scenario.Parameters, result), timeout)
		fmt.Fprintln(cmd.OutOrStdout(), insight.Text)
		return nil
	},
}

// describeAdvisor names the service answering the request
func describeAdvisor(adv advisor.Advisor) string {
	if g, ok := adv.(*advisor.GeminiAdvisor); ok {
		return "gemini model " + g.Model()
	}
	return "offline"
}

func init() {
	adviseCmd.Flags().Duration("timeout", 30*time.Second, "Advisory request timeout")
	adviseCmd.Flags().String("model", advisor.DefaultModel, "Gemini model name")
	adviseCmd.Flags().Int("policy-year", 0, "Benefit policy year (default: scenario policy_year or latest)")
	adviseCmd.Flags().String("policy-file", "", "Path to policy file (default: policy.yaml if it exists)")
}
