// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.allowed_origins", "host_allowed_origins")

	v.BindEnv("db.host", "db_host")
	v.BindEnv("db.port", "db_port")
	v.BindEnv("db.user", "db_user")
	v.BindEnv("db.password", "db_password")
	v.BindEnv("db.name", "db_name")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.session_ttl", "jwt_session_ttl")

	v.BindEnv("admin.email", "admin_email")
	v.BindEnv("admin.password", "admin_password")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.username", "mail_username")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.from", "mail_from")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)

	v.SetDefault("jwt.session_ttl", 7*24*time.Hour)

	v.SetDefault("mail.port", 587)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("db.user") == "" {
		return errors.New("db.user can't be empty")
	}

	if v.GetString("db.name") == "" {
		return errors.New("db.name can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetDuration("jwt.session_ttl") <= 0 {
		return errors.New("jwt.session_ttl must be bigger than 0")
	}

	// Admin credentials live only here. They are never compiled into the
	// frontend bundle and never stored in the users table.
	if v.GetString("admin.email") == "" {
		return errors.New("admin.email can't be empty")
	}

	if v.GetString("admin.password") == "" {
		return errors.New("admin.password can't be empty")
	}

	return nil
}
