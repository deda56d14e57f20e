package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"lawncare/entities"
	"lawncare/pkg/care"
)

var (
	recArea       float64
	recIrrigation float64
	recHeight     float64
	recNitrogen   float64
	recJSON       bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the care schedule for a lawn without starting the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := entities.LawnProfile{
			Area:           recArea,
			TargetHeight:   recHeight,
			IrrigationRate: recIrrigation,
		}
		var fert *entities.Fertilizer
		if recNitrogen > 0 {
			fert = &entities.Fertilizer{Name: fmt.Sprintf("%g%% N fertilizer", recNitrogen), NitrogenPercentage: recNitrogen, Active: true}
		}
		return writeRecommendation(cmd.OutOrStdout(), p, fert, time.Now().In(cfg.Location()), recJSON)
	},
}

func init() {
	f := recommendCmd.Flags()
	f.Float64Var(&recArea, "area", 50, "Lawn area in m2")
	f.Float64Var(&recIrrigation, "irrigation-rate", 15, "Irrigation rate in L/min")
	f.Float64Var(&recHeight, "target-height", 25, "Target cut height in mm")
	f.Float64Var(&recNitrogen, "nitrogen", 10, "Fertilizer nitrogen percentage (0 for none)")
	f.BoolVar(&recJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(recommendCmd)
}

type recommendation struct {
	Task    entities.Task    `json:"task"`
	Label   string           `json:"label"`
	Details care.TaskDetails `json:"details"`
}

func writeRecommendation(w io.Writer, p entities.LawnProfile, fert *entities.Fertilizer, now time.Time, asJSON bool) error {
	n := 0
	tasks := care.DeriveTasks(p, now, func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	})

	out := make([]recommendation, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, recommendation{Task: t, Label: care.TypeLabel(t.Type), Details: care.Details(t.Type, p, fert)})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTASK\tMINUTES\tRECOMMENDATION")
	for _, r := range out {
		rec := r.Details.Description
		if r.Details.Available {
			rec = fmt.Sprintf("%g %s (%s)", r.Details.Amount, r.Details.Unit, r.Details.Description)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Task.Date.Format("2006-01-02"), r.Label, r.Task.Duration, rec)
	}
	return tw.Flush()
}
