package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/pdf_ziper/internal/archive"
	"github.com/Vovarama1992/pdf_ziper/internal/delivery"
	"github.com/Vovarama1992/pdf_ziper/internal/domain"
	"github.com/Vovarama1992/pdf_ziper/internal/error_notificator"
	"github.com/Vovarama1992/pdf_ziper/internal/infra"
	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
	"github.com/Vovarama1992/pdf_ziper/internal/pipeline"
	"github.com/Vovarama1992/pdf_ziper/internal/ports"
	"github.com/Vovarama1992/pdf_ziper/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	adminChatID, _ := strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var archiveStorage ports.ArchiveStorage

	s3Client, err := infra.NewS3Client()
	switch {
	case err == nil:
		archiveStorage = domain.NewArchiveStorage(s3Client)
	case errors.Is(err, infra.ErrS3NotConfigured):
		log.Printf("[main] s3 not configured, large archives will be rejected")
	default:
		log.Fatalf("failed to init s3: %v", err)
	}

	rasterizer := pdf.NewFitzRasterizer()
	zipPacker := archive.NewZipPacker()

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra(adminChatID)
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	pdfService := pdf.NewService(rasterizer)
	archiveService := archive.NewService(zipPacker)
	pipelineService := pipeline.NewService(pdfService, archiveService, zl)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(pipelineService, archiveStorage, errService)

	if err := botApp.InitBot(token); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.GetBot())

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	convertHandler := delivery.NewConvertHandler(pipelineService, zl)

	delivery.RegisterRoutes(r, convertHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "pdf_ziper",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
