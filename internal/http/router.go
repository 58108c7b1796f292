package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/escalationsvc/internal/http/handlers"
	"github.com/you/escalationsvc/internal/http/middleware"
	"github.com/you/escalationsvc/internal/obs"
)

func BuildRouter(eh *handlers.EscalationHandlers, ah *handlers.AuthHandlers, th *handlers.TwimlHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(obs.Handler()))

	// Fetched out-of-band by the telephony provider when it connects a
	// call, so it carries no auth of its own.
	r.GET("/twiml/emergency-call", th.EmergencyCall)

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	v := r.Group("/").Use(jwtmw.WithJWT())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.PUT("/auth/emergency-contact", ah.UpdateEmergencyContact)
	v.POST("/escalations", eh.Trigger)
	v.GET("/escalations", eh.History)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/escalations/:userId", eh.AdminHistory)
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
