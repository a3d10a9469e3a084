package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/clinware/formassist/config"
	"github.com/clinware/formassist/controllers"
	"github.com/clinware/formassist/form"
	"github.com/clinware/formassist/middleware"
	"github.com/clinware/formassist/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(assistant *form.Assistant) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/static", "./static")

	r.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	formController := controllers.NewFormController(assistant)
	configController := controllers.NewConfigController(assistant)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware())

	formGroup := api.Group("/form")
	formGroup.GET("/fields", configController.GetFields)
	formGroup.POST("/validate", formController.ValidateField)
	formGroup.POST("/validate-all", formController.ValidateReport)
	formGroup.POST("/limit", formController.LimitField)
	formGroup.POST("/format", formController.FormatText)
	formGroup.POST("/logo", formController.UploadLogo)
	formGroup.GET("/notice", formController.GetNotice)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "static asset not found"})
			return
		}
		// Anything else falls back to the form page.
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}
