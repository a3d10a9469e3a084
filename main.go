package main

import (
	"time"

	"github.com/clinware/formassist/config"
	"github.com/clinware/formassist/form"
	"github.com/clinware/formassist/routes"
	"github.com/clinware/formassist/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	assistant := form.NewAssistant(form.Options{
		NoteLimit:    cfg.NoteLimitChars,
		MaxLogoBytes: cfg.MaxLogoBytes,
		NoticeTTL:    time.Duration(cfg.NoticeTTLMillis) * time.Millisecond,
		SubmitReset:  time.Duration(cfg.SubmitResetSeconds) * time.Second,
	})

	r := routes.SetupRouter(assistant)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
