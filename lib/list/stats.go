package list

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	ListStatsName = "xlist/sll"
)

type singlyLinkedListStats struct {
	swapAttemptCounter atomic.Int64
	swapRelinkCounter  atomic.Int64
	elementCount       metric.Int64UpDownCounter
	pushCount          metric.Int64Counter
	popCount           metric.Int64Counter
	swapCount          metric.Int64Counter
	swapScanLengths    metric.Int64Histogram
	swapHitRatio       metric.Float64ObservableGauge
}

func (stats *singlyLinkedListStats) RecordElementCount(delta int64) {
	if stats == nil {
		return
	}
	stats.elementCount.Add(context.Background(), delta)
}

func (stats *singlyLinkedListStats) IncreasePushCount() {
	if stats == nil {
		return
	}
	stats.pushCount.Add(context.Background(), 1)
}

func (stats *singlyLinkedListStats) IncreasePopCount() {
	if stats == nil {
		return
	}
	stats.popCount.Add(context.Background(), 1)
}

func (stats *singlyLinkedListStats) RecordSwap(st SwapStatus, scanned int64) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("sll.swap.status", st.String()),
	)
	stats.swapCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
	if scanned > 0 {
		stats.swapScanLengths.Record(context.Background(), scanned)
	}
	stats.swapAttemptCounter.Add(1)
	if st == SwapSwapped {
		stats.swapRelinkCounter.Add(1)
	}
}

func newSinglyLinkedListStats(name string) *singlyLinkedListStats {
	meterName := fmt.Sprintf("%s/%s", ListStatsName, name)
	stats := &singlyLinkedListStats{
		elementCount: lo.Must[metric.Int64UpDownCounter](otel.Meter(meterName).
			Int64UpDownCounter(
				"sll.element.count",
				metric.WithDescription("The number of elements held by the singly linked list."),
			),
		),
		pushCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"sll.push.count",
				metric.WithDescription("The number of elements pushed at either end of the singly linked list."),
			),
		),
		popCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"sll.pop.count",
				metric.WithDescription("The number of elements popped from the front of the singly linked list."),
			),
		),
		swapCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"sll.swap.count",
				metric.WithDescription("The number of swap by value attempts, grouped by swap status."),
			),
		),
		swapScanLengths: lo.Must[metric.Int64Histogram](otel.Meter(meterName).
			Int64Histogram(
				"sll.swap.scan.length",
				metric.WithDescription("The number of nodes inspected by one swap by value attempt."),
			),
		),
	}
	stats.swapHitRatio = lo.Must[metric.Float64ObservableGauge](otel.Meter(meterName).
		Float64ObservableGauge(
			"sll.swap.hit.ratio",
			metric.WithDescription("The ratio of swap by value attempts that relinked a pair of nodes."),
			metric.WithFloat64Callback(func(ctx context.Context, ob metric.Float64Observer) error {
				ratio := 1.00
				if stats.swapAttemptCounter.Load() > 0 {
					ratio = float64(stats.swapRelinkCounter.Load()) /
						float64(stats.swapAttemptCounter.Load())
				}
				ob.Observe(ratio)
				return nil
			}),
			metric.WithUnit("%"),
		),
	)
	return stats
}
