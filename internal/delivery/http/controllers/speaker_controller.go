package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"speakerservice/internal/delivery/http/helpers"
	"speakerservice/internal/domain"
)

// SpeakersPath is the collection path every speaker URI is built from.
const SpeakersPath = "/speakers"

// CreateSpeakerRequest is the request body for POST /speakers. It has the
// shape of a Speaker; id and links are accepted but ignored.
type CreateSpeakerRequest struct {
	domain.Speaker
}

// Validate implements Validator. Accepted talks need a unique, non-empty id.
func (c CreateSpeakerRequest) Validate() []string {
	var errs []string
	seen := make(map[string]struct{}, len(c.AcceptedTalks))
	for i, t := range c.AcceptedTalks {
		switch {
		case t == nil:
			errs = append(errs, fmt.Sprintf("accepted_talks[%d] must not be null", i))
		case t.ID == "":
			errs = append(errs, fmt.Sprintf("accepted_talks[%d].id is required", i))
		default:
			if _, dup := seen[t.ID]; dup {
				errs = append(errs, fmt.Sprintf("accepted_talks[%d].id %q is duplicated", i, t.ID))
			}
			seen[t.ID] = struct{}{}
		}
	}
	return errs
}

// SpeakerSuccessResponse is the success response envelope for a single speaker.
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type SpeakersSuccessResponse struct {
	Data  *domain.Speakers  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ImportSessionizeResponse is the response body for the Sessionize import.
type ImportSessionizeResponse struct {
	Imported int `json:"imported"`
}

// ImportSessionizeSuccessResponse is the success response envelope for the Sessionize import (200).
type ImportSessionizeSuccessResponse struct {
	Data  ImportSessionizeResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type SpeakerController struct {
	Logger        *slog.Logger
	Service       domain.SpeakerService
	TalksBasePath string
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService, talksBasePath string) *SpeakerController {
	return &SpeakerController{
		Logger:        logger,
		Service:       svc,
		TalksBasePath: talksBasePath,
	}
}

// Add godoc
// @Summary Create a speaker
// @Description Stores a new speaker with its accepted talks. Any id or links in the body are ignored; the id is server-generated and returned in the Location header.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speaker body controllers.CreateSpeakerRequest true "Speaker"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Header 201 {string} Location "URI of the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) Add(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker := req.Speaker
	speaker.ID = ""
	speaker.Links = nil
	for _, t := range speaker.AcceptedTalks {
		t.Links = nil
	}
	if err := c.Service.Create(r.Context(), &speaker); err != nil {
		if errors.Is(err, domain.ErrInvalidSpeaker) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.serverError(w, r, err)
		return
	}
	links := helpers.NewLinks(r, SpeakersPath)
	self := links.Self(speaker.ID)
	speaker.AddSelfLink(self)
	w.Header().Set("Location", self)
	helpers.WriteJSONSuccess(w, http.StatusCreated, &speaker)
}

// Retrieve godoc
// @Summary Get a speaker by ID
// @Description Returns the speaker with an ETag. If-None-Match with a current tag yields 304, If-Match with a stale tag yields 412. With expand=false (default) bio and accepted talks are omitted.
// @Tags speakers
// @Produce json
// @Param id path string true "Speaker ID"
// @Param expand query bool false "Include bio and accepted talks"
// @Param If-None-Match header string false "Entity tags held by the client"
// @Param If-Match header string false "Entity tags the speaker must match"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the speaker"
// @Success 304 "Not modified"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 412 {object} helpers.APIResponse "error.code: precondition_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [get]
func (c *SpeakerController) Retrieve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	expand := helpers.ParseBool(r, "expand", false)

	speaker, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
			return
		}
		c.serverError(w, r, err)
		return
	}

	etag := speaker.ETag()
	switch helpers.EvaluatePreconditions(r, etag) {
	case http.StatusNotModified:
		helpers.WriteNotModified(w, etag)
		return
	case http.StatusPreconditionFailed:
		helpers.WriteJSONError(w, http.StatusPreconditionFailed, helpers.ErrCodePreconditionFailed, "speaker has changed")
		return
	}

	links := helpers.NewLinks(r, SpeakersPath)
	speaker.AddSelfLink(links.Self(speaker.ID))
	speaker.AddCollectionLink(links.Collection())
	if expand {
		for _, t := range speaker.AcceptedTalks {
			t.Links.Add(domain.RelSelf, links.Resolve(c.TalksBasePath+url.PathEscape(t.ID)))
		}
	} else {
		speaker.Strip()
	}
	w.Header().Set("ETag", etag)
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// AllSpeakers godoc
// @Summary List speakers
// @Description Returns one page of speakers with self, first, last, next and previous links. Invalid page values fall back to 1.
// @Tags speakers
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} controllers.SpeakersSuccessResponse "data contains the page"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) AllSpeakers(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r)
	result, err := c.Service.ListSpeakers(r.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no speakers on this page")
			return
		}
		c.serverError(w, r, err)
		return
	}

	links := helpers.NewLinks(r, SpeakersPath)
	for _, s := range result.Speakers {
		s.AddSelfLink(links.Self(s.ID))
	}
	body := domain.NewSpeakers(result.Speakers)
	last := result.TotalPages
	body.AddSelfLink(links.Page(result.Page))
	body.AddFirst(links.Page(1))
	body.AddLast(links.Page(last))
	body.AddNext(links.Page(min(result.Page+1, last)))
	body.AddPrevious(links.Page(max(result.Page-1, 1)))
	helpers.WriteJSONSuccess(w, http.StatusOK, body)
}

// Remove godoc
// @Summary Delete a speaker
// @Description Deletes the speaker. Deleting an unknown id also returns 204.
// @Tags speakers
// @Security BearerAuth
// @Param id path string true "Speaker ID"
// @Success 204 "No content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [delete]
func (c *SpeakerController) Remove(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportSessionize godoc
// @Summary Import speakers from Sessionize
// @Description Fetches the Sessionize event and creates every speaker with the sessions they present as accepted talks.
// @Description Speakers are created one at a time and the import stops at the first failure. Speakers created before it stay stored; the error message reports how many.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param sessionizeID path string true "Sessionize event ID"
// @Success 200 {object} controllers.ImportSessionizeSuccessResponse "data.imported is the number of speakers created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/import/sessionize/{sessionizeID} [post]
func (c *SpeakerController) ImportSessionize(w http.ResponseWriter, r *http.Request) {
	sessionizeID := r.PathValue("sessionizeID")
	if sessionizeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionizeID")
		return
	}
	n, err := c.Service.ImportFromSessionize(r.Context(), sessionizeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSpeaker) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
				fmt.Sprintf("import stopped after %d speakers were created: %v", n, err))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "imported", n, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError,
			fmt.Sprintf("import stopped after %d speakers were created", n))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportSessionizeResponse{Imported: n})
}

func (c *SpeakerController) serverError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}
