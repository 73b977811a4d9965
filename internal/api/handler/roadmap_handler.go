package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"learnpath_backend/internal/app/service"
	"learnpath_backend/internal/common"
)

type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

func NewRoadmapHandler(rs *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: rs}
}

func (h *RoadmapHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.listCourses)          // GET /courses
	r.Get("/course/{courseKey}", h.getCourse) // GET /course/web-dev
}

func (h *RoadmapHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"courses": h.roadmapService.List(),
	})
}

func (h *RoadmapHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "courseKey")

	roadmap, err := h.roadmapService.Get(key)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, roadmap)
}
