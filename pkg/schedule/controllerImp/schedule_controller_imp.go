package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lawncare/entities"
	"lawncare/pkg/care"
	"lawncare/pkg/httpx"
	"lawncare/pkg/store/service"
)

const dateLayout = "2006-01-02"

type SchedCtrl struct {
	store service.Store
	loc   *time.Location
}

// New returns the task controller; loc is used to read date-only and month
// query parameters.
func New(store service.Store, loc *time.Location) *SchedCtrl {
	if loc == nil {
		loc = time.UTC
	}
	return &SchedCtrl{store: store, loc: loc}
}

type listQuery struct {
	Month string `query:"month" json:"month" validate:"omitempty,yearmonth"`
	From  string `query:"from" json:"from"`
	To    string `query:"to" json:"to"`
}

// List returns tasks, filtered by ?month=YYYY-MM or by ?from=&to= (dates or
// RFC3339 timestamps, both inclusive).
func (h *SchedCtrl) List(c echo.Context) error {
	var q listQuery
	if ok, err := httpx.BindValid(c, &q); !ok {
		return err
	}
	tasks, err := h.store.Tasks()
	if err != nil {
		return httpx.StoreError(c, err)
	}

	if q.Month != "" {
		t, err := time.ParseInLocation("2006-01", q.Month, h.loc)
		if err != nil {
			return httpx.BadRequest(c, "month must be YYYY-MM")
		}
		return c.JSON(http.StatusOK, care.TasksInMonth(tasks, t.Year(), t.Month(), h.loc))
	}

	from, err := h.parseBound(q.From, false)
	if err != nil {
		return httpx.BadRequest(c, "bad from")
	}
	to, err := h.parseBound(q.To, true)
	if err != nil {
		return httpx.BadRequest(c, "bad to")
	}
	return c.JSON(http.StatusOK, care.TasksBetween(tasks, from, to))
}

// parseBound reads a date or timestamp. A bare date used as an upper bound
// covers the whole day.
func (h *SchedCtrl) parseBound(s string, upper bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, h.loc)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

func (h *SchedCtrl) Upcoming(c echo.Context) error {
	out, err := h.store.UpcomingTasks()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Details(c echo.Context) error {
	task, err := h.find(c.Param("id"))
	if err != nil {
		return httpx.StoreError(c, err)
	}
	if task == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	d, err := h.store.GetTaskDetails(*task)
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"task": task, "details": d})
}

func (h *SchedCtrl) find(id string) (*entities.Task, error) {
	tasks, err := h.store.Tasks()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Toggle flips completion; unknown ids are accepted and change nothing.
func (h *SchedCtrl) Toggle(c echo.Context) error {
	if err := h.store.ToggleTaskCompletion(c.Param("id")); err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}

func (h *SchedCtrl) Regenerate(c echo.Context) error {
	out, err := h.store.RegenerateTasks()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
