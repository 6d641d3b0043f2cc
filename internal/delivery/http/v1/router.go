package v1

import (
	"net/http"
	"portfolio-contact-backend/internal/delivery/http/middleware"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/auth"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactForms ContactSubmitter
	AdminUC      domain.AdminUsecase
	HealthUC     usecase.HealthUsecase
	Owner        domain.OwnerProfile
	AdminIssuer  *auth.Issuer
	RateLimiter  *middleware.RateLimiter // nil selects a new in-memory limiter

	// TrustedProxies lists proxy IPs/CIDRs allowed to set X-Forwarded-For.
	// Empty trusts none, so the client IP is the connection's remote address.
	TrustedProxies []string

	FrontendURL       string
	AllowLocalhost    bool
	GlobalRateLimit   int
	ContactRatePerMin int
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		logger.Log.Error("Invalid TRUSTED_PROXIES, trusting no proxy", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.FrontendURL, deps.AllowLocalhost)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware(middleware.DefaultRateLimitConfig(deps.GlobalRateLimit)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, "System status", status)
	})

	// Public routes
	NewContactHandler(v1, deps.ContactForms, deps.Owner, limiter.Middleware(middleware.ContactRateLimitConfig(deps.ContactRatePerMin)))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AdminAuth(deps.AdminIssuer))
	{
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
