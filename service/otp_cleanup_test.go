package service

import (
	"context"
	"testing"
	"time"

	"starmaker/coaching-api/model"

	"github.com/stretchr/testify/require"
)

func TestOtpCleanupRemovesStaleRows(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.db.Create(&model.Otp{
		Email:     "stale@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	OtpCleanup(ctx, 10*time.Millisecond, l.db)

	require.Eventually(t, func() bool {
		var rows int64
		return l.db.Model(&model.Otp{}).Count(&rows).Error == nil && rows == 0
	}, time.Second, 10*time.Millisecond)
}

func TestOtpCleanupStopsOnCancel(t *testing.T) {
	l := newTestLedger(t)

	ctx, cancel := context.WithCancel(context.Background())
	OtpCleanup(ctx, 10*time.Millisecond, l.db)
	cancel()

	// Give the goroutine a moment to observe the cancellation
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, l.db.Create(&model.Otp{
		Email:     "stale@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	time.Sleep(50 * time.Millisecond)

	var rows int64
	require.NoError(t, l.db.Model(&model.Otp{}).Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}
