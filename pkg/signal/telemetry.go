package signal

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/forge3d/forge/pkg/signal")

var (
	// signalsCreated measures the number of reactive cells created since
	// process start, including the internal cells backing derived values.
	signalsCreated metric.Int64Counter

	// notificationsDelivered measures individual listener deliveries: one per
	// subscriber per Set, plus the replay delivery on each Subscribe.
	notificationsDelivered metric.Int64Counter

	// subscriptionsReleased measures listener registrations torn down, whether
	// through Subscription.Release or through disposal of the source signal.
	subscriptionsReleased metric.Int64Counter
)

func init() {
	var err error
	signalsCreated, err = meter.Int64Counter(
		"signal.created",
		metric.WithDescription("The number of reactive cells created."),
	)
	if err != nil {
		panic("signal: failed to init 'signal.created' instrument")
	}

	notificationsDelivered, err = meter.Int64Counter(
		"signal.notifications.delivered",
		metric.WithDescription("The number of individual listener deliveries."),
	)
	if err != nil {
		panic("signal: failed to init 'signal.notifications.delivered' instrument")
	}

	subscriptionsReleased, err = meter.Int64Counter(
		"signal.subscriptions.released",
		metric.WithDescription("The number of listener registrations released."),
	)
	if err != nil {
		panic("signal: failed to init 'signal.subscriptions.released' instrument")
	}
}
