package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-agent/internal/calendar"
	"github.com/jonathan/hr-agent/internal/config"
)

var (
	slotsDuration  int
	slotsDaysAhead int
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print open interview slots",
	Long:  "Query the calendar for open interview slots within business hours and print them grouped by date.",
	RunE:  runSlots,
}

func init() {
	slotsCmd.Flags().IntVarP(&slotsDuration, "duration", "d", 30, "Interview duration in minutes")
	slotsCmd.Flags().IntVarP(&slotsDaysAhead, "days", "n", 14, "Days ahead to search")
	rootCmd.AddCommand(slotsCmd)
}

func runSlots(cmd *cobra.Command, _ []string) error {
	if slotsDuration <= 0 || slotsDaysAhead <= 0 {
		return fmt.Errorf("duration and days must be positive")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	var client calendar.Client
	if cfg.DevMode {
		client = calendar.NewStubClient()
	} else {
		live, err := calendar.NewGoogleClient(ctx, cfg.CalendarCredentialsPath, cfg.CalendarID, cfg.Timezone)
		if err != nil {
			return fmt.Errorf("failed to create calendar client: %w", err)
		}
		client = live
	}

	finder := calendar.NewSlotFinder(client, calendar.DefaultBusinessHours(cfg.Location()))
	groups := finder.FindSlots(ctx, slotsDuration, slotsDaysAhead)

	if len(groups) == 0 {
		fmt.Println("No open slots found.")
		return nil
	}
	for _, group := range groups {
		fmt.Printf("%s: %s\n", group.Date, strings.Join(group.Slots, ", "))
	}
	return nil
}
