// poolcore-bench measures the read throughput and staleness of the shared
// clock service.
//
// Usage:
//
//	poolcore-bench [-precise] [-readers N] [-duration 5s] [-resolution 1ms] [-ntp-server host]
//
// The bench starts one clock service, hammers it from N reader goroutines
// and reports reads/sec plus the worst observed lag behind the OS clock.
// Run it once with -precise and once without to see what the cached read
// path buys.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/smnsjas/go-poolcore/clock"
)

func main() {
	precise := flag.Bool("precise", false, "Query the time source on every read instead of the cache")
	readers := flag.Int("readers", 4, "Number of concurrent reader goroutines")
	duration := flag.Duration("duration", 5*time.Second, "How long to read")
	resolution := flag.Duration("resolution", time.Millisecond, "Ticker refresh interval")
	ntpServer := flag.String("ntp-server", "", "Optional NTP server for an offset-corrected time source")
	flag.Parse()

	if *readers < 1 {
		fmt.Fprintln(os.Stderr, "Error: -readers must be at least 1")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	runID := uuid.New()

	opts := clock.Options{
		Precise:    *precise,
		Resolution: *resolution,
		Logger:     logger,
	}
	if *ntpServer != "" {
		opts.Source = clock.NewNTPSource(*ntpServer, clock.DefaultNTPSyncInterval)
	}

	svc := clock.New(opts)
	svc.Start()

	logger.Info("bench starting",
		slog.String("run_id", runID.String()),
		slog.Bool("precise", *precise),
		slog.Int("readers", *readers),
		slog.Duration("duration", *duration))

	var (
		totalReads atomic.Int64
		maxLagMS   atomic.Int64
		stop       = make(chan struct{})
		wg         sync.WaitGroup
	)
	for i := 0; i < *readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var reads int64
			for {
				select {
				case <-stop:
					totalReads.Add(reads)
					return
				default:
				}
				got := svc.Millis()
				reads++
				lag := time.Now().UnixMilli() - got
				for {
					cur := maxLagMS.Load()
					if lag <= cur || maxLagMS.CompareAndSwap(cur, lag) {
						break
					}
				}
			}
		}()
	}

	time.Sleep(*duration)
	close(stop)
	wg.Wait()
	svc.Stop()

	reads := totalReads.Load()
	fmt.Printf("run %s: %d reads in %s (%.0f reads/sec), %d ticks, worst staleness %dms\n",
		runID, reads, *duration, float64(reads)/duration.Seconds(), svc.Ticks(), maxLagMS.Load())
}
