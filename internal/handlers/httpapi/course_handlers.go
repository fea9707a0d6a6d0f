package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/models"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
)

// errCourseLookupDisabled is returned when no external provider is wired
var errCourseLookupDisabled = HandlerError("course lookup is not configured")

type courseRequest struct {
	Name  string              `json:"name"`
	City  string              `json:"city"`
	Holes map[int]models.Hole `json:"holes"`
}

type importCourseRequest struct {
	ExternalID string `json:"externalId"`
}

func (h *Handler) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseRepo.ListCoursesByOwner(r.Context(), &courseRepo.ListCoursesByOwnerInput{
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, courses)
}

func (h *Handler) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.ownedCourse(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, course)
}

func (h *Handler) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		h.writeError(w, errBadRequest)
		return
	}

	now := h.clock.Now()
	course := &models.Course{
		ID:        h.uuid.NewUUID(),
		OwnerID:   auth.UserID(r.Context()),
		Name:      req.Name,
		City:      req.City,
		Holes:     req.Holes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.courseRepo.SaveCourse(r.Context(), &courseRepo.SaveCourseInput{Course: course}); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, course)
}

func (h *Handler) handleSearchCourses(w http.ResponseWriter, r *http.Request) {
	if h.courseAPI == nil {
		h.writeError(w, errCourseLookupDisabled)
		return
	}
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		h.writeError(w, errBadRequest)
		return
	}

	results, err := h.courseAPI.SearchByCity(r.Context(), city)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// handleImportCourse copies a provider course into the caller's saved list
func (h *Handler) handleImportCourse(w http.ResponseWriter, r *http.Request) {
	if h.courseAPI == nil {
		h.writeError(w, errCourseLookupDisabled)
		return
	}

	var req importCourseRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.ExternalID == "" {
		h.writeError(w, errBadRequest)
		return
	}

	course, err := h.courseAPI.GetByID(r.Context(), req.ExternalID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	now := h.clock.Now()
	course.ID = h.uuid.NewUUID()
	course.OwnerID = auth.UserID(r.Context())
	course.CreatedAt = now
	course.UpdatedAt = now

	if err := h.courseRepo.SaveCourse(r.Context(), &courseRepo.SaveCourseInput{Course: course}); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, course)
}

func (h *Handler) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.ownedCourse(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = h.courseRepo.DeleteCourse(r.Context(), &courseRepo.DeleteCourseInput{
		CourseID: course.ID,
		OwnerID:  course.OwnerID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

// ownedCourse fetches the path course and verifies it belongs to the caller
func (h *Handler) ownedCourse(r *http.Request) (*models.Course, error) {
	course, err := h.courseRepo.GetCourse(r.Context(), &courseRepo.GetCourseInput{
		CourseID: chi.URLParam(r, "id"),
	})
	if err != nil {
		return nil, err
	}
	if course.OwnerID != auth.UserID(r.Context()) {
		return nil, courseRepo.ErrCourseNotFound
	}
	return course, nil
}
