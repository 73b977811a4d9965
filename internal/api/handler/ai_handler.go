package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"learnpath_backend/internal/app/prompt"
	"learnpath_backend/internal/app/service"
	"learnpath_backend/internal/common"
)

// maxUploadBytes caps the multipart form held in memory for PDF uploads.
const maxUploadBytes = 16 << 20

type AIHandler struct {
	gateway *service.GatewayService
}

func NewAIHandler(gateway *service.GatewayService) *AIHandler {
	return &AIHandler{gateway: gateway}
}

// RegisterRoutes mounts the five AI endpoints. All of them sit behind the
// session middleware; the routes registered here only see authenticated
// requests.
func (h *AIHandler) RegisterRoutes(r chi.Router) {
	r.Post("/mentor-chat", runPrompt[prompt.MentorChat](h.gateway))
	r.Post("/summarize", runPrompt[prompt.Summarize](h.gateway))
	r.Post("/recommend-courses", runPrompt[prompt.RecommendCourses](h.gateway))
	r.Post("/brainstorm-career", runPrompt[prompt.BrainstormCareer](h.gateway))
	r.Post("/summarize-pdf", h.summarizePDF)
}

// runPrompt is the one handler behind the four JSON-body features: decode
// the feature's payload, hand it to the gateway, wrap the completion under
// the feature's response key.
func runPrompt[T prompt.Request](gateway *service.GatewayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}

		result, err := gateway.Run(r.Context(), req)
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
			return
		}
		common.RespondWithJSON(w, http.StatusOK, map[string]string{result.Key: result.Text})
	}
}

func (h *AIHandler) summarizePDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "No file part")
		return
	}

	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if header.Filename == "" || !strings.HasSuffix(header.Filename, ".pdf") {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid file")
		return
	}

	result, err := h.gateway.SummarizeDocument(r.Context(), data)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{result.Key: result.Text})
}
