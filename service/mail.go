package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers one-time codes to an address. The SMTP transport is
// swapped out in tests.
type Mailer interface {
	SendOTP(to, code string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			viper.GetString("mail.username"),
			viper.GetString("mail.password"),
		),
		from: viper.GetString("mail.from"),
	}
}

func (s *SMTPMailer) SendOTP(to, code string) error {
	if to == s.from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Star Maker password reset code")
	m.SetBody("text/html", fmt.Sprintf(
		"Your one-time password reset code is <b>%s</b>.<br><br>It expires in 5 minutes. If you didn't request this, you can ignore this email.", code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}

	return nil
}

// LogMailer is used when no SMTP credentials are configured. It writes the
// code to the log instead of delivering it, which is enough for local
// development against the frontend.
type LogMailer struct{}

func (LogMailer) SendOTP(to, code string) error {
	zap.L().Warn("Mail transport not configured, OTP logged instead",
		zap.String("to", to),
		zap.String("code", code),
	)
	return nil
}
