package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/render"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/timeslot"
)

var slotsCmd = &cobra.Command{
	Use:     "slots",
	Short:   "Print the clock timetable for a study day",
	Example: `  studyplan slots --start 07:00 --hours 3 --slot 45 --break 15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		hours, _ := cmd.Flags().GetFloat64("hours")
		slotMinutes, _ := cmd.Flags().GetInt("slot")
		breakMinutes, _ := cmd.Flags().GetInt("break")

		slots, err := timeslot.Build(start, hours, slotMinutes, breakMinutes)
		if err != nil {
			return err
		}
		render.Slots(cmd.OutOrStdout(), slots)
		return nil
	},
}

func init() {
	slotsCmd.Flags().String("start", "07:00", "Start time (HH:MM, 24-hour)")
	slotsCmd.Flags().Float64("hours", 3, "Study hours for the day")
	slotsCmd.Flags().Int("slot", timeslot.DefaultSlotMinutes, "Slot length in minutes")
	slotsCmd.Flags().Int("break", timeslot.DefaultBreakMinutes, "Break between slots in minutes")
}
