package cli

import (
	"fmt"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Issue repeated GET requests and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		headerPairs, _ := cmd.Flags().GetStringArray("header")
		headers := parseHeaders(headerPairs)

		// Latencies in microseconds, up to an hour per exchange.
		hist := hdrhistogram.New(1, 3_600_000_000, 3)

		service := http.NewService()
		failures := 0
		for i := 0; i < count; i++ {
			resp, err := service.Get(cmd.Context(), url, headers)
			if err != nil {
				failures++
				continue
			}
			if err := hist.RecordValue(int64(resp.Duration() * 1e6)); err != nil {
				return err
			}
		}

		fmt.Printf("Requests:  %d (%d failed)\n", count, failures)
		if hist.TotalCount() == 0 {
			return fmt.Errorf("all %d requests failed", count)
		}

		fmt.Printf("Min:       %.2fms\n", float64(hist.Min())/1000)
		fmt.Printf("Mean:      %.2fms\n", hist.Mean()/1000)
		fmt.Printf("p50:       %.2fms\n", float64(hist.ValueAtQuantile(50))/1000)
		fmt.Printf("p95:       %.2fms\n", float64(hist.ValueAtQuantile(95))/1000)
		fmt.Printf("p99:       %.2fms\n", float64(hist.ValueAtQuantile(99))/1000)
		fmt.Printf("Max:       %.2fms\n", float64(hist.Max())/1000)

		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("count", "n", 10, "Number of requests to issue")
	benchCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
}
