package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	sig "github.com/AnatoleLucet/hellmut"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type counterOptions struct {
	writes  int
	value   int
	debug   bool
	metrics bool
}

func counterCmd() *cobra.Command {
	var opts counterOptions

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Write a counter signal and log every effect run",
		Long: `Creates a count signal and an effect logging it, then writes
--value to the signal --writes times. Every write re-runs the effect,
even when the value does not change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.writes, "writes", "n", 2, "Number of writes")
	cmd.Flags().IntVarP(&opts.value, "value", "v", 1, "Value written each time")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log runtime operations to stderr")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print runtime metrics after the run")

	return cmd
}

func runCounter(out, errOut io.Writer, opts counterOptions) error {
	if opts.writes < 0 {
		return errors.New("--writes must not be negative")
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	rt := sig.New(sig.WithLogger(logger), sig.WithMetrics(reg))

	count := sig.NewSignal(rt, 0)
	log := []int{}

	rt.NewEffect(func() {
		c := count.Get()
		log = append(log, c)
		fmt.Fprintf(out, "count = %d\n", c)
	})

	for i := 0; i < opts.writes; i++ {
		count.Set(opts.value)
	}

	fmt.Fprintf(out, "log = %v\n", log)

	if !opts.metrics {
		return nil
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
