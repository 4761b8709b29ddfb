package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	ListMyPunches(w http.ResponseWriter, r *http.Request)
	GetMyDayStatus(w http.ResponseWriter, r *http.Request)
	GetMyMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Punch implements AttendanceHandler.
func (h *attendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// ListMyPunches implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMyPunches(w http.ResponseWriter, r *http.Request) {
	filter := attendance.PunchFilter{
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
		Kind:      queryParam(r, "kind"),
	}

	result, err := h.attendanceService.GetMyPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyDayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyDayStatus(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.attendanceService.GetMyDayStatus(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.NotFound(w, "No attendance recorded for this date")
		return
	}

	response.Success(w, result)
}

// GetMyMonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetMyMonthlySummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func queryParam(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// yearMonthParams parses the year/month query pair, defaulting to the
// current month. Writes the error response itself on bad input.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Month must be between 1 and 12", nil)
			return 0, 0, false
		}
		month = parsed
	}

	return year, month, true
}
