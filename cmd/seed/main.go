package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/insighthub/event-ingest-service/internal/seeder"
)

var (
	baseURL  string
	count    int
	interval time.Duration
	entities []string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate fake e-commerce events and post them to the ingest API",
	Long: `seed generates realistic user behavior, cart, order, order item,
payment and logistics events and posts them to a running instance of the
event ingest API. Useful for local development and smoke testing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range entities {
			known := false
			for _, k := range seeder.Entities {
				if e == k {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown entity %q (valid: %v)", e, seeder.Entities)
			}
		}
		return seeder.NewRunner(baseURL, count, interval, entities).Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "base URL of the ingest API")
	rootCmd.Flags().IntVar(&count, "count", 100, "number of events to send")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "delay between events")
	rootCmd.Flags().StringSliceVar(&entities, "entities", nil, "entities to seed (default: all)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
