// Package api contains all endpoints available
package api

import (
	"time"

	"starmaker/coaching-api/middleware"
	"starmaker/coaching-api/security"
	"starmaker/coaching-api/service"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Hash   *security.BcryptHash
	Mailer service.Mailer
	Otps   *service.OtpLedger
}

func NewRouter(database *gorm.DB, mailer service.Mailer) (*API, error) {
	a := &API{
		DB:     database,
		Hash:   security.New(),
		Mailer: mailer,
		Otps:   service.NewOtpLedger(database),
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.allowed_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware()
	admin := middleware.RequireAdmin()

	main := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/health		-> Used to check if the server is alive
		main.GET("/health", a.Health)

		// GET /api/courses		-> Returns the course catalog
		main.GET("/courses", cacheFor(60), a.CourseList)

		// POST /api/contact		-> Accepts a contact form submission
		main.POST("/contact", a.ContactSubmit)
	}

	auth := main.Group("/auth")
	{
		// POST /api/auth/register	-> Registers a new student account
		auth.POST("/register", a.AuthRegister)

		// POST /api/auth/login		-> Logs in a student and returns a session token
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/forgot-password -> Issues an OTP and mails it
		auth.POST("/forgot-password", a.AuthForgotPassword)

		// POST /api/auth/verify-otp	-> Trades a valid OTP for a reset token
		auth.POST("/verify-otp", a.AuthVerifyOTP)

		// POST /api/auth/reset-password -> Sets a new password using a reset token
		auth.POST("/reset-password", a.AuthResetPassword)

		// GET /api/auth/me		-> Returns the account behind a session token
		auth.GET("/me", jwt, a.AuthMe)
	}

	adm := main.Group("/admin")
	{
		// POST /api/admin/login	-> Logs in the configured admin
		adm.POST("/login", a.AdminLogin)

		// GET /api/admin/contacts	-> Lists contact form submissions
		adm.GET("/contacts", jwt, admin, a.AdminContacts)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	var level zapcore.Level
	if err := level.Set(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
