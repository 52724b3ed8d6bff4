package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/internal/config"
	"github.com/henderiw/intervaltable/internal/logging"
	"github.com/henderiw/intervaltable/pkg/collection"
	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/source"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ivdemo",
	Short: "Interval table demo",
	Long:  "ivdemo builds sample event and reading collections and logs the views derived from them.",
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Merge, intersect and search a set of sample events",
	RunE:  runEvents,
}

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "Run the value sequence queries over generated readings",
	RunE:  runReadings,
}

var selector string

func init() {
	eventsCmd.Flags().StringVarP(&selector, "selector", "l", "", "label selector applied to the events, e.g. room=1")
	rootCmd.AddCommand(eventsCmd, readingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment, cfg.LogLevel)
	return nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	base := time.Now().UTC().Truncate(cfg.Step)
	slot := func(n int) time.Time { return base.Add(time.Duration(n) * cfg.Step) }
	batch := uuid.NewString()

	items := []interval.Source{
		source.NewEvent("standup", slot(0), slot(2), labels.Set{"room": "1", "batch": batch}),
		source.NewEvent("review", slot(1), slot(3), labels.Set{"room": "2", "batch": batch}),
		source.NewEvent("lunch", slot(5), slot(7), labels.Set{"room": "1", "batch": batch}),
		source.NewReading(slot(0), slot(1), 1, nil),
	}
	c, err := collection.NewFrom[source.Event](items, collection.WithName("events"), collection.WithLogger(logger))
	if err != nil {
		// mismatched items are skipped, the rest are stored
		logger.Warn().Err(err).Msg("some items were not added")
	}

	logIntervals("merged", c.MergeIntersectingIntervals())
	logIntervals("merged bounds", c.MergeNonIntersectingIntervals())
	logIntervals("intersecting", c.GetIntersectingIntervals())
	logIntervals("intersecting parts", c.GetIntersectingParts())
	logIntervals("at start", c.FindIntervalsContainingPoint(slot(0)))
	for _, gap := range c.Free() {
		logger.Info().Time("start", gap.Start()).Time("end", gap.End()).Dur("duration", gap.Duration()).Msg("free")
	}

	if selector != "" {
		sel, err := labels.Parse(selector)
		if err != nil {
			return fmt.Errorf("parse selector: %w", err)
		}
		found, err := c.FindByLabel(sel)
		if err != nil {
			return err
		}
		logIntervals("selected", found)
	}
	return nil
}

func runReadings(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	base := time.Now().UTC().Truncate(cfg.Step)
	c := collection.NewValueCollection[source.Reading](collection.WithName("readings"), collection.WithLogger(logger))
	for i := 0; i < cfg.Samples; i++ {
		start := base.Add(time.Duration(i) * cfg.Step)
		// values step between 0 and 2 so runs show up in the sequence queries
		c.AddSource(source.NewReading(start, start.Add(cfg.Step), float64((i/2)%3), labels.Set{"sensor": "demo"}))
	}

	logIntervals("value 1", c.FindIntervalsByValue(1))
	logIntervals("runs of 1", c.FindUniqueIntervalsByValueSequence(1))
	logIntervals("value changes", c.FindUniqueIntervalsByFirstValueSequence())
	return nil
}

func logIntervals[T any](view string, ivs []interval.Interval[T]) {
	logger.Info().Str("view", view).Int("count", len(ivs)).Msg("derived view")
	for _, iv := range ivs {
		logger.Debug().Str("view", view).Stringer("interval", iv).Msg("interval")
	}
}
