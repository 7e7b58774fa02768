package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type CutoffHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type cutoffHandlerImpl struct {
	cutoffService attendance.CutoffService
}

func NewCutoffHandler(cutoffService attendance.CutoffService) CutoffHandler {
	return &cutoffHandlerImpl{cutoffService: cutoffService}
}

// Run handles POST /cutoff/run. The body is optional.
func (h *cutoffHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req attendance.CutoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode cutoff request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.cutoffService.Run(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch result.Skipped {
	case attendance.CutoffSkipTooEarly:
		response.SuccessWithMessage(w, "Cutoff time not reached yet", result)
	case attendance.CutoffSkipAlreadyDone:
		response.SuccessWithMessage(w, "Cutoff already ran for this date", result)
	default:
		response.SuccessWithMessage(w, "Cutoff completed", result)
	}
}
