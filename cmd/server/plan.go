package main

import (
	"encoding/json"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/planner"

	"github.com/spf13/cobra"
)

var (
	planIntensity string
	planDays      int
	planFocus     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a template workout plan as JSON",
	Long: `Builds a weekly plan from the built-in templates, without any AI
provider or database, and prints it as JSON.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		plan := planner.BuildFallbackPlan(domain.Intensity(planIntensity), planDays, domain.FocusArea(planFocus))
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	},
}

func init() {
	planCmd.Flags().StringVar(&planIntensity, "intensity", string(domain.IntensityBeginner), "beginner, intermediate or advanced")
	planCmd.Flags().IntVar(&planDays, "days", 3, "training days per week (1-7)")
	planCmd.Flags().StringVar(&planFocus, "focus", string(domain.FocusStrength), "strength, hypertrophy, endurance or weight_loss")
}
