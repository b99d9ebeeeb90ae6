package serverget

import (
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkrenn/courseflow/data/db"
)

type getHandler struct {
	dbPool *pgxpool.Pool
	logger *slog.Logger
}

type GetQueriesParam int

const (
	OffsetKey GetQueriesParam = iota
	LimitKey
)

func (h *getHandler) getDepartments(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	q := db.New(h.dbPool)
	departmentRows, err := q.ListDepartments(ctx, db.ListDepartmentsParams{
		Limitvalue:  ctx.Value(LimitKey).(int32),
		Offsetvalue: ctx.Value(OffsetKey).(int32),
	})
	if err != nil {
		h.logger.Error("Could not get department rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	departments, err := json.Marshal(departmentRows)
	if err != nil {
		h.logger.Error("Could not marshal department rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(departments)
}

func (h *getHandler) getCourses(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	q := db.New(h.dbPool)
	courseRows, err := q.ListCoursesForDepartment(ctx, db.ListCoursesForDepartmentParams{
		DepartmentCode: chi.URLParam(r, "departmentCode"),
		Limitvalue:     ctx.Value(LimitKey).(int32),
		Offsetvalue:    ctx.Value(OffsetKey).(int32),
	})
	if err != nil {
		h.logger.Error("Could not get course rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	courses, err := json.Marshal(courseRows)
	if err != nil {
		h.logger.Error("Could not marshal course rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(courses)
}

func (h *getHandler) getSections(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	q := db.New(h.dbPool)
	sectionRows, err := q.ListSectionsForCourse(ctx, db.ListSectionsForCourseParams{
		DepartmentCode: chi.URLParam(r, "departmentCode"),
		CourseCode:     chi.URLParam(r, "courseCode"),
	})
	if err != nil {
		h.logger.Error("Could not get section rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	sections, err := json.Marshal(sectionRows)
	if err != nil {
		h.logger.Error("Could not marshal section rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(sections)
}

func (h *getHandler) sectionID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	sectionID, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
	if err != nil {
		http.Error(w, "Invalid section id", http.StatusBadRequest)
		return 0, false
	}
	return int32(sectionID), true
}

func (h *getHandler) getMeetings(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	sectionID, ok := h.sectionID(w, r)
	if !ok {
		return
	}
	q := db.New(h.dbPool)
	meetingRows, err := q.ListMeetingsForSection(ctx, sectionID)
	if err != nil {
		h.logger.Error("Could not get meeting rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	meetings, err := json.Marshal(meetingRows)
	if err != nil {
		h.logger.Error("Could not marshal meeting rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(meetings)
}

func (h *getHandler) getInstructors(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	sectionID, ok := h.sectionID(w, r)
	if !ok {
		return
	}
	q := db.New(h.dbPool)
	instructorRows, err := q.ListInstructorsForSection(ctx, sectionID)
	if err != nil {
		h.logger.Error("Could not get instructor rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	instructors, err := json.Marshal(instructorRows)
	if err != nil {
		h.logger.Error("Could not marshal instructor rows", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(instructors)
}
