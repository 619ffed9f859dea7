package http

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
	"github.com/yanqian/vedic-weekly/internal/domain/janampatri"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
	"github.com/yanqian/vedic-weekly/pkg/util"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	panchangSvc panchang.Service
	digestSvc   digest.Service
	janamSvc    janampatri.Service
	recommender verses.Recommender
	zone        *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// NewHandler constructs the root HTTP handler. The janam patri service may
// be nil when no birth details are configured. Request dates are civil dates
// at the configured location, so they are parsed in its zone; parsing them
// as UTC would shift west-of-UTC locations onto the previous day.
func NewHandler(panchangSvc panchang.Service, digestSvc digest.Service, janamSvc janampatri.Service, recommender verses.Recommender, loc panchang.GeoLocation, logger *slog.Logger) *Handler {
	return &Handler{
		panchangSvc: panchangSvc,
		digestSvc:   digestSvc,
		janamSvc:    janamSvc,
		recommender: recommender,
		zone:        loc.Zone(),
		logger:      logger.With("component", "http.handler"),
		now:         time.Now,
	}
}

// GetPanchang returns the panchang for a single date. Defaults to today.
func (h *Handler) GetPanchang(c *gin.Context) {
	date := h.today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := util.ParseDate(raw, h.zone)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_date", "date must be formatted as YYYY-MM-DD", err))
			return
		}
		date = parsed
	}

	day, err := h.panchangSvc.Compute(c.Request.Context(), date)
	if err != nil {
		status, code := statusForError(err, "panchang_failed")
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetDigest assembles the weekly digest for the week containing weekStart.
// The start date is snapped back to the preceding Sunday so callers can pass
// any day of the week. Use format=text for the rendered plain text digest.
func (h *Handler) GetDigest(c *gin.Context) {
	weekStart := h.today()
	if raw := c.Query("weekStart"); raw != "" {
		parsed, err := util.ParseDate(raw, h.zone)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_date", "weekStart must be formatted as YYYY-MM-DD", err))
			return
		}
		weekStart = parsed
	}
	weekStart = snapToSunday(weekStart)

	assembled, err := h.digestSvc.Assemble(c.Request.Context(), weekStart)
	if err != nil {
		status, code := statusForError(err, "digest_failed")
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, digest.Render(assembled))
		return
	}
	c.JSON(http.StatusOK, assembled)
}

// GetJanamPatri returns the configured individual's birth chart.
func (h *Handler) GetJanamPatri(c *gin.Context) {
	if h.janamSvc == nil {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_configured", "no birth details configured", nil))
		return
	}

	patri, err := h.janamSvc.Compute(c.Request.Context())
	if err != nil {
		status, code := statusForError(err, "janam_patri_failed")
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, patri)
}

type recommendRequest struct {
	Tags []string `json:"tags"`
	TopK int      `json:"topK"`
}

// RecommendVerses scores the corpus against the supplied tags.
func (h *Handler) RecommendVerses(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if req.TopK <= 0 {
		req.TopK = 3
	}

	rec, err := h.recommender.Recommend(c.Request.Context(), req.Tags, req.TopK)
	if err != nil {
		status, code := statusForError(err, "recommend_failed")
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// today is the current civil date at the configured location.
func (h *Handler) today() time.Time {
	now := h.now().In(h.zone)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.zone)
}

func snapToSunday(date time.Time) time.Time {
	truncated := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return truncated.AddDate(0, 0, -int(truncated.Weekday()))
}

func statusForError(err error, fallbackCode string) (int, string) {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return http.StatusBadRequest, apperrors.CodeInvalidInput
	case apperrors.IsCode(err, apperrors.CodeInvalidDate):
		return http.StatusBadRequest, apperrors.CodeInvalidDate
	case apperrors.IsCode(err, apperrors.CodeEphemerisUnavailable):
		return http.StatusBadGateway, apperrors.CodeEphemerisUnavailable
	case apperrors.IsCode(err, apperrors.CodeCorpusEmpty):
		return http.StatusInternalServerError, apperrors.CodeCorpusEmpty
	case apperrors.IsCode(err, apperrors.CodeMatchError):
		return http.StatusInternalServerError, apperrors.CodeMatchError
	default:
		return http.StatusInternalServerError, fallbackCode
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
