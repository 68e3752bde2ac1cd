package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/estimator"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	server     string
	propertyID string
	roomID     string
	base       int64
	maxNights  int
	start      string
	end        string
	timeout    time.Duration
}

func newQuoteCmd() *cobra.Command {
	var opts quoteOptions
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate a stay from cached overrides, then confirm it with the service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8080", "pricing service base URL")
	cmd.Flags().StringVar(&opts.propertyID, "property", "", "property ID")
	cmd.Flags().StringVar(&opts.roomID, "room", "", "room ID")
	cmd.Flags().Int64Var(&opts.base, "base", 0, "base price per night used by the estimate")
	cmd.Flags().StringVar(&opts.start, "start", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "check-out date (YYYY-MM-DD, exclusive)")
	cmd.Flags().IntVar(&opts.maxNights, "max-nights", pricing.DefaultMaxNights, "longest stay accepted, must match the service's PRICING_MAX_NIGHTS")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "time to wait for the service")
	cmd.MarkFlagsOneRequired("property", "room")
	cmd.MarkFlagsMutuallyExclusive("property", "room")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func runQuote(ctx context.Context, out io.Writer, opts quoteOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	target, err := quoteTarget(opts)
	if err != nil {
		return err
	}
	r, err := pricing.ParseRange(opts.start, opts.end)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	client := estimator.NewHTTPCalculationClient(opts.server, nil)
	cache := estimator.NewOverrideCache(estimator.DefaultCacheTTL)
	defer cache.Close()

	if target.Kind == pricing.TargetProperty {
		if overrides, err := client.ListOverrides(ctx, target.ID, r); err != nil {
			slog.Warn("could not prefetch overrides, estimating from base price", "error", err.Error())
		} else {
			cache.Fill(target.ID, r, overrides)
		}
	}

	quoter := estimator.NewQuoter(estimator.New(cache, pricing.NewAggregator(opts.maxNights)), client)
	estimate, results, err := quoter.Quote(ctx, target, r.Start, r.End)
	if err != nil {
		return err
	}
	printQuote(out, "estimate", estimate)

	final, ok := <-results
	if !ok {
		return errors.New("quote was superseded")
	}
	if final.Err != nil {
		fmt.Fprintf(out, "service unavailable, keeping estimate: %v\n", final.Err)
		return nil
	}
	printQuote(out, "confirmed", final)
	return nil
}

func quoteTarget(opts quoteOptions) (pricing.Target, error) {
	kind, flag, raw := pricing.TargetProperty, "--property", opts.propertyID
	if opts.roomID != "" {
		kind, flag, raw = pricing.TargetRoom, "--room", opts.roomID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return pricing.Target{}, fmt.Errorf("invalid %s: %w", flag, err)
	}
	base := opts.base
	return pricing.Target{ID: id, Kind: kind, BasePricePerNight: &base}, nil
}

func printQuote(out io.Writer, label string, q estimator.Quote) {
	s := q.Summary
	fmt.Fprintf(out, "%-9s nights=%d total=%d average=%d sold_out=%d\n",
		label, s.Nights, s.TotalPrice, s.AveragePerNight, s.Counts.SoldOut)
	for _, n := range s.Breakdown {
		price := "-"
		if n.Price != nil {
			price = fmt.Sprint(*n.Price)
		}
		fmt.Fprintf(out, "  %s  %-11s %s\n", n.Date, n.Status, price)
	}
}
