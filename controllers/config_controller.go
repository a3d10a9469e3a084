package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinware/formassist/config"
	"github.com/clinware/formassist/form"
	"github.com/clinware/formassist/utils"
)

// ConfigController serves the form configuration the page renders from:
// the field registry (captions, required flags, limits) and the guard rules.
type ConfigController struct {
	assistant *form.Assistant
}

func NewConfigController(assistant *form.Assistant) *ConfigController {
	return &ConfigController{assistant: assistant}
}

// GetFields returns the field registry in declaration order so the page can
// build labels, counters, and required markers without hardcoding them.
func (c *ConfigController) GetFields(ctx *gin.Context) {
	cfg := config.Get()
	utils.Success(ctx, gin.H{
		"fields": c.assistant.Fields(),
		"rules": gin.H{
			"note_limit_chars":     cfg.NoteLimitChars,
			"max_logo_bytes":       c.assistant.Logo().MaxBytes(),
			"notice_ttl_millis":    cfg.NoticeTTLMillis,
			"submit_reset_seconds": cfg.SubmitResetSeconds,
		},
	})
}
