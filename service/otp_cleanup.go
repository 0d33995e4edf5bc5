package service

import (
	"context"
	"time"

	"starmaker/coaching-api/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OtpCleanup periodically removes OTP rows that aren't needed anymore until
// ctx is cancelled. Correctness never depends on it, expiry is always
// re-checked when a code is verified.
func OtpCleanup(ctx context.Context, t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("OTP cleanup attached", zap.Duration("tick_every", t))

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			r := db.
				Where("used = ? OR expires_at < ?", true, time.Now()).
				Delete(&model.Otp{})
			if r.Error != nil {
				zap.L().Error("Failed to cleanup stale OTPs", zap.Error(r.Error))
				continue
			}

			if r.RowsAffected > 0 {
				zap.L().Debug("Cleaned up stale OTPs", zap.Int64("rows", r.RowsAffected))
			}
		}
	}()
}
