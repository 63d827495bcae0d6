package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"enrols.backend/pkg/logger"
)

// ExpiredOtpDeleter is the slice of the otp repository the reaper needs.
type ExpiredOtpDeleter interface {
	DeleteExpired(ctx context.Context, limit int) (int64, error)
}

// OtpReaperJob periodically deletes expired OTP records. Token
// validation never consults these rows, so reaping lags expiry without
// affecting correctness.
type OtpReaperJob struct {
	repo     ExpiredOtpDeleter
	interval time.Duration
	batch    int
	stop     chan struct{}
}

func NewOtpReaperJob(repo ExpiredOtpDeleter) *OtpReaperJob {
	return &OtpReaperJob{
		repo:     repo,
		interval: 5 * time.Minute,
		batch:    500,
		stop:     make(chan struct{}),
	}
}

func (j *OtpReaperJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting otp reaper job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "otp reaper job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "otp reaper job stopped")
			return
		case <-ticker.C:
			j.reap(ctx)
		}
	}
}

func (j *OtpReaperJob) Stop() {
	close(j.stop)
}

func (j *OtpReaperJob) reap(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, j.batch)
	if err != nil {
		logger.Error(ctx, "error reaping expired otps", zap.Error(err))
		return
	}
	if deleted > 0 {
		logger.Info(ctx, "reaped expired otps", zap.Int64("deleted", deleted))
	}
}
