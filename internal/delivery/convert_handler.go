package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/pdf_ziper/internal/archive"
	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
	"github.com/Vovarama1992/pdf_ziper/internal/pipeline"
)

type ConvertHandler struct {
	pipeline *pipeline.Service
	log      *logger.ZapLogger
}

func NewConvertHandler(pipelineService *pipeline.Service, log *logger.ZapLogger) *ConvertHandler {
	return &ConvertHandler{
		pipeline: pipelineService,
		log:      log,
	}
}

// Convert — тело запроса это один PDF, ответ — ZIP с PNG страницами
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty body, expected a PDF document", http.StatusBadRequest)
		return
	}

	res, err := h.pipeline.Convert(r.Context(), body)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "convert failed", Error: err})
		http.Error(w, pipeline.UserMessage(err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="pages.zip"`)
	w.Write(res.Archive)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pdf.ErrUnreadable):
		return http.StatusBadRequest
	case errors.Is(err, pdf.ErrNoPages):
		return http.StatusUnprocessableEntity
	case errors.Is(err, archive.ErrPacking):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
