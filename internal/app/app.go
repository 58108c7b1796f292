package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/escalationsvc/internal/config"
	httpx "github.com/you/escalationsvc/internal/http"
	"github.com/you/escalationsvc/internal/http/handlers"
	"github.com/you/escalationsvc/internal/http/middleware"
	"github.com/you/escalationsvc/internal/infrastructure/auth"
	"github.com/you/escalationsvc/internal/infrastructure/database"
	"github.com/you/escalationsvc/internal/infrastructure/repositories"
	"github.com/you/escalationsvc/internal/infrastructure/telephony"
	"github.com/you/escalationsvc/internal/obs"
	"github.com/you/escalationsvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	obs.Init()

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	gatewaySelector := telephony.NewSelector(telephony.Credentials{
		AccountSID: cfg.TwilioSID,
		AuthToken:  cfg.TwilioToken,
		FromNumber: cfg.TwilioFrom,
	}, cfg.CallTimeout)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	escalationRepo := repositories.NewEscalationRepository(gdb)

	// Services
	severityPolicy := services.NewSeverityPolicy(cfg.SeverityThreshold)
	messageBuilder := services.NewVoiceMessageBuilder(cfg.TwimlBaseURL)
	escalationSvc := services.NewEscalationService(gatewaySelector, messageBuilder, escalationRepo, services.EscalationConfig{
		FromNumber:      cfg.TwilioFrom,
		CallTimeout:     cfg.CallTimeout,
		MaxCallAttempts: cfg.MaxCallAttempts,
	})
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, cfg.SessionTTL, cfg.AccessTTL)

	// Handlers
	escH := handlers.NewEscalationHandlers(escalationSvc, severityPolicy, userRepo)
	authH := handlers.NewAuthHandlers(authSvc, userRepo)
	twimlH := handlers.NewTwimlHandlers()
	polH := &handlers.PolicyHandlers{E: cas.E}

	// Middleware
	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(escH, authH, twimlH, polH, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
