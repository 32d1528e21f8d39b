package api

import (
	"net/http"

	"venue-calendar/internal/domain/event"
	reqdto "venue-calendar/internal/handler/dto/request"
	resdto "venue-calendar/internal/handler/dto/response"
	"venue-calendar/internal/handler/httperr"
	"venue-calendar/internal/handler/middleware"
	"venue-calendar/internal/pkg/errs"
	"venue-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q       queries.AvailabilityQueries
	session queries.SessionQueries
}

func NewCalendarHandler(q queries.AvailabilityQueries, session queries.SessionQueries) *CalendarHandler {
	return &CalendarHandler{q: q, session: session}
}

// @Summary Check booking conflicts
// @Description Evaluate a candidate booking window against the events of its day
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Param end query string true "End time (HH:MM)"
// @Param category query string false "Candidate category, e.g. wedding"
// @Param exclude query string false "Event ID being edited"
// @Param session query string false "Query session for coordinated requests"
// @Param X-Query-Session header string false "Query session for coordinated requests"
// @Success 200 {object} resdto.ConflictResponse
// @Success 204 "Superseded by a newer request in the same session"
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability/conflicts [get]
func (h *CalendarHandler) CheckConflict(c *gin.Context) {
	var req reqdto.CheckConflictRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.session.CheckConflict(c.Request.Context(), middleware.QuerySession(c), params)
	if err != nil {
		h.abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictCheck(result))
}

// @Summary Calendar heat map
// @Description Per-day aggregates for every date in an inclusive range
// @Tags calendar
// @Produce json
// @Param start query string true "First date (YYYY-MM-DD)"
// @Param end query string true "Last date (YYYY-MM-DD)"
// @Param session query string false "Query session for coordinated requests"
// @Param X-Query-Session header string false "Query session for coordinated requests"
// @Success 200 {object} resdto.CalendarResponse
// @Success 204 "Superseded by a newer request in the same session"
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/calendar/aggregates [get]
func (h *CalendarHandler) CalendarAggregates(c *gin.Context) {
	var req reqdto.CalendarAggregatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, end, err := req.ToDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.session.CalendarAggregates(c.Request.Context(), middleware.QuerySession(c), start, end)
	if err != nil {
		h.abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Day detail
// @Description Aggregate and active events of one day
// @Tags calendar
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/calendar/days/{date} [get]
func (h *CalendarHandler) DayDetail(c *gin.Context) {
	date, err := event.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}

	detail, err := h.q.DayDetail(c.Request.Context(), date)
	if err != nil {
		h.abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayDetail(detail))
}

func (h *CalendarHandler) abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrStaleResultDiscarded):
		c.Header(middleware.SupersededHeader, "true")
		c.AbortWithStatus(http.StatusNoContent)
	case errs.Is(err, errs.ErrInvalidCandidate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate", err.Error())
	case errs.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", err.Error())
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, errs.ErrRepositoryUnavailable), errs.Is(err, errs.ErrCoordinatorClosed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Event source unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
