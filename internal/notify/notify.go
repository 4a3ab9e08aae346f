package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier is the fire-and-forget hook the ledger and worker call after
// relevant operations. Errors are logged by callers and never affect ledger
// correctness.
type Notifier interface {
	LowBalance(ctx context.Context, userID int, balance float64) error
	ReportReady(ctx context.Context, userID int, report string) error
}

// LogNotifier is the default delivery: it only records the event. Real
// delivery (mail, push) lives behind the same interface in the outer system.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) LowBalance(_ context.Context, userID int, balance float64) error {
	zap.L().Info("low balance notification",
		zap.Int("userID", userID), zap.Float64("balance", balance))
	return nil
}

func (n *LogNotifier) ReportReady(_ context.Context, userID int, report string) error {
	zap.L().Info("report ready notification",
		zap.Int("userID", userID), zap.String("report", report))
	return nil
}
