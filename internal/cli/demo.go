package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ib-77/rxbox/internal/demo"
	"github.com/ib-77/rxbox/internal/telemetry"
	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/scheduler"
)

type demoResult struct {
	Values            []string `json:"values"`
	Completed         bool     `json:"completed"`
	Error             string   `json:"error,omitempty"`
	CallerGoroutine   uint64   `json:"caller_goroutine"`
	ProducerGoroutine uint64   `json:"producer_goroutine"`
	DeliveryGoroutine []uint64 `json:"delivery_goroutines"`
}

// NewDemoCmd creates the demo command.
func NewDemoCmd(outputFn func(cmd *cobra.Command) *Output) *cobra.Command {
	var cfg demo.Config
	var metricsAddr string
	var hold time.Duration
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Subscribe on an io pool, observe on the main loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			logger := telemetry.FromContext(ctx)
			cfg.Logger = logger

			reg := prometheus.NewRegistry()
			cfg.Metrics = scheduler.NewMetrics(reg)

			if metricsAddr != "" {
				srv := serveMetrics(metricsAddr, reg, logger)
				defer func() {
					if hold > 0 {
						logger.Info("holding metrics endpoint", "addr", metricsAddr, "for", hold)
						time.Sleep(hold)
					}
					shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
					defer stop()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			report, err := demo.Run(ctx, cfg)
			if rx.IsCancellationError(err) {
				return fmt.Errorf("stream did not terminate within %s or was interrupted: %w", timeout, err)
			}
			if err != nil {
				return err
			}

			return printReport(outputFn(cmd), report)
		},
	}

	cmd.Flags().IntVar(&cfg.Items, "items", 1, "Number of values the producer emits")
	cmd.Flags().BoolVar(&cfg.Fail, "fail", false, "Make the producer report an error instead of values")
	cmd.Flags().IntVar(&cfg.PoolSize, "pool-size", 0, "Max io tasks running at once (0 = unbounded)")
	cmd.Flags().BoolVar(&cfg.ProcessRemaining, "process-remaining", false, "Run tasks still queued when the main loop stops")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve /metrics on this address while the demo runs")
	cmd.Flags().DurationVar(&hold, "hold", 0, "Keep /metrics up this long after the demo")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Give up if the stream has not terminated by then")

	return cmd
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}

func printReport(out *Output, report demo.Report) error {
	result := demoResult{
		Values:            report.Values,
		Completed:         report.Completed,
		CallerGoroutine:   report.CallerGoroutine,
		ProducerGoroutine: report.ProducerGoroutine,
		DeliveryGoroutine: report.DeliveryGoroutine,
	}
	if report.Err != nil {
		result.Error = report.Err.Error()
	}

	headers := []string{"EVENT", "VALUE", "GOROUTINE"}
	rows := [][]string{
		{"subscribe", "", strconv.FormatUint(report.CallerGoroutine, 10)},
		{"produce", "", strconv.FormatUint(report.ProducerGoroutine, 10)},
	}
	for i, v := range report.Values {
		rows = append(rows, []string{"onNext", v, goroutineAt(report.DeliveryGoroutine, i)})
	}
	last := goroutineAt(report.DeliveryGoroutine, len(report.DeliveryGoroutine)-1)
	switch {
	case report.Err != nil:
		rows = append(rows, []string{"onError", report.Err.Error(), last})
	case report.Completed:
		rows = append(rows, []string{"onComplete", "", last})
	}

	return out.Print(headers, rows, result)
}

func goroutineAt(ids []uint64, i int) string {
	if i < 0 || i >= len(ids) {
		return "?"
	}
	return fmt.Sprint(ids[i])
}
