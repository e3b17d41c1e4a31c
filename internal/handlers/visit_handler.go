package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucVisit "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type VisitUseCases struct {
	Create          *ucVisit.CreateVisit
	Get             *ucVisit.GetVisit
	Cancel          *ucVisit.CancelVisit
	RegisterPatient *ucVisit.RegisterPatient
	RegisterDoctor  *ucVisit.RegisterDoctor

	ForPatient         *ucVisit.ListVisitsForPatient
	ForDoctor          *ucVisit.ListVisitsForDoctor
	AvailableForDoctor *ucVisit.ListAvailableForDoctor
	BySpecAndDate      *ucVisit.ListAvailableBySpecializationAndDate
	BySpecAndRange     *ucVisit.ListBySpecializationAndDateRange
	ByRange            *ucVisit.ListAvailableByDateRange
}

type VisitHandler struct {
	uc  VisitUseCases
	loc *time.Location
}

// NewVisitHandler parses query dates as calendar days in loc.
func NewVisitHandler(uc VisitUseCases, loc *time.Location) *VisitHandler {
	return &VisitHandler{uc: uc, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateVisitRequest struct {
	StartTime *time.Time `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time" binding:"required"`
}

type AvailabilityQuery struct {
	Specialization string `form:"specialization" binding:"omitempty,max=100"`
	Date           string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Start          string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End            string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", param+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (h *VisitHandler) parseDate(c *gin.Context, value string) (time.Time, bool) {
	d, err := timezone.ParseDate(value, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "dates must use format 2006-01-02")
		return time.Time{}, false
	}
	return d, true
}

func writeList(c *gin.Context, visits []models.Visit, err error) {
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewVisitDTOs(visits))
}

// ======================================================
// CREATE
// ======================================================

func (h *VisitHandler) Create(c *gin.Context) {
	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.Describe(err))
		return
	}

	v, err := h.uc.Create.Execute(c.Request.Context(), ucVisit.CreateVisitInput{
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewVisitDTO(v))
}

// ======================================================
// GET / CANCEL
// ======================================================

func (h *VisitHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	v, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewVisitDTO(v))
}

func (h *VisitHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// REGISTER
// ======================================================

func (h *VisitHandler) RegisterPatient(c *gin.Context) {
	visitID, ok := parseID(c, "id")
	if !ok {
		return
	}
	patientID, ok := parseID(c, "patientId")
	if !ok {
		return
	}

	if _, err := h.uc.RegisterPatient.Execute(c.Request.Context(), visitID, patientID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *VisitHandler) RegisterDoctor(c *gin.Context) {
	visitID, ok := parseID(c, "id")
	if !ok {
		return
	}
	doctorID, ok := parseID(c, "doctorId")
	if !ok {
		return
	}

	if _, err := h.uc.RegisterDoctor.Execute(c.Request.Context(), visitID, doctorID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LISTS
// ======================================================

func (h *VisitHandler) ListForPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patientId")
	if !ok {
		return
	}

	visits, err := h.uc.ForPatient.Execute(c.Request.Context(), patientID)
	writeList(c, visits, err)
}

func (h *VisitHandler) ListForDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "doctorId")
	if !ok {
		return
	}

	visits, err := h.uc.ForDoctor.Execute(c.Request.Context(), doctorID)
	writeList(c, visits, err)
}

func (h *VisitHandler) ListAvailableForDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "doctorId")
	if !ok {
		return
	}

	visits, err := h.uc.AvailableForDoctor.Execute(c.Request.Context(), doctorID)
	writeList(c, visits, err)
}

// ListAvailable serves three query shapes:
//
//	?specialization=&date=
//	?specialization=&start=&end=
//	?start=&end=
func (h *VisitHandler) ListAvailable(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", validators.Describe(err))
		return
	}

	q.Specialization = strings.TrimSpace(q.Specialization)

	ctx := c.Request.Context()
	hasRange := q.Start != "" && q.End != ""

	switch {
	case q.Specialization != "" && q.Date != "" && q.Start == "" && q.End == "":
		date, ok := h.parseDate(c, q.Date)
		if !ok {
			return
		}
		visits, err := h.uc.BySpecAndDate.Execute(ctx, q.Specialization, date)
		writeList(c, visits, err)

	case q.Specialization != "" && hasRange && q.Date == "":
		start, end, ok := h.parseRange(c, q)
		if !ok {
			return
		}
		visits, err := h.uc.BySpecAndRange.Execute(ctx, q.Specialization, start, end)
		writeList(c, visits, err)

	case q.Specialization == "" && hasRange && q.Date == "":
		start, end, ok := h.parseRange(c, q)
		if !ok {
			return
		}
		visits, err := h.uc.ByRange.Execute(ctx, start, end)
		writeList(c, visits, err)

	default:
		httperr.BadRequest(c, "invalid_query",
			"use specialization with date, specialization with start and end, or start with end")
	}
}

func (h *VisitHandler) parseRange(c *gin.Context, q AvailabilityQuery) (time.Time, time.Time, bool) {
	start, ok := h.parseDate(c, q.Start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := h.parseDate(c, q.End)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
