package bootstrap

import (
	"dakar-rentals/internal/pkg/metrics"
	"dakar-rentals/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.LifecycleRecorder { return m },
	),
)
