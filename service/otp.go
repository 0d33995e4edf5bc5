// Package service contains the business logic behind the API endpoints
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"starmaker/coaching-api/model"

	"gorm.io/gorm"
)

// ErrOtpNotFound is returned for every failed lookup, whether the email is
// unknown, the code is wrong or the code was already used. Handlers must not
// leak which of the three it was.
var ErrOtpNotFound = errors.New("no matching otp")

const otpTTL = 5 * time.Minute

type OtpLedger struct {
	db *gorm.DB
}

func NewOtpLedger(db *gorm.DB) *OtpLedger {
	return &OtpLedger{db: db}
}

// Issue generates a fresh 6-digit code for the given email and stores it
// with a 5 minute expiry. Any unused codes for the same email are removed
// first, so only the latest issued code can ever verify.
func (l *OtpLedger) Issue(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code, %w", err)
	}

	err = l.db.
		Where("email = ? AND used = ?", email, false).
		Delete(&model.Otp{}).
		Error
	if err != nil {
		return "", fmt.Errorf("failed to invalidate old OTPs, %w", err)
	}

	err = l.db.Create(&model.Otp{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}).Error
	if err != nil {
		return "", fmt.Errorf("failed to store OTP, %w", err)
	}

	return code, nil
}

// Verify returns the most recently created unused record matching email and
// code exactly. Expiry is not checked here, callers do that via Otp.Expired
// so an expired-but-correct code can be reported differently.
func (l *OtpLedger) Verify(email, code string) (*model.Otp, error) {
	var rec model.Otp

	err := l.db.
		Where("email = ? AND code = ? AND used = ?", email, code, false).
		Order("created_at DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOtpNotFound
		}

		return nil, err
	}

	return &rec, nil
}

// Consume marks the record as used. Consuming an already consumed record
// has no additional effect.
func (l *OtpLedger) Consume(rec *model.Otp) error {
	rec.Used = true

	return l.db.
		Model(&model.Otp{}).
		Where("id = ?", rec.ID).
		Update("used", true).
		Error
}

// generateCode draws a uniformly random code in [100000, 999999]. The code
// doubles as a security credential so math/rand won't do here.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
