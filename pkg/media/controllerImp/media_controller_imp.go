package controllerImp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lawncare/entities"
	"lawncare/pkg/care"
	"lawncare/pkg/httpx"
	"lawncare/pkg/store/service"
)

type MediaCtrl struct{ store service.Store }

func New(store service.Store) *MediaCtrl { return &MediaCtrl{store} }

// tagList decodes either ["a","b"] or "a, b".
type tagList []string

func (t *tagList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = care.ParseTags(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

type createReq struct {
	MediaURL  string  `json:"media_url" validate:"required"`
	MediaType string  `json:"media_type" validate:"required,oneof=image video"`
	Note      string  `json:"note" validate:"max=2000"`
	Tags      tagList `json:"tags"`
}

type updateReq struct {
	createReq
	// Date is RFC3339; empty keeps the stored date. Likes are toggled
	// separately and are not part of an edit.
	Date string `json:"date"`
}

func (h *MediaCtrl) List(c echo.Context) error {
	var (
		out []entities.MediaLog
		err error
	)
	if tag := c.QueryParam("tag"); tag != "" {
		out, err = h.store.MediaLogsByTag(tag)
	} else {
		out, err = h.store.MediaLogs()
	}
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MediaCtrl) Create(c echo.Context) error {
	var req createReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	id, err := h.store.AddMediaLog(service.NewMediaLog{
		MediaURL:  req.MediaURL,
		MediaType: entities.MediaType(req.MediaType),
		Note:      req.Note,
		Tags:      req.Tags,
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.Created(c, id)
}

func (h *MediaCtrl) Update(c echo.Context) error {
	var req updateReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	var date time.Time
	if req.Date != "" {
		d, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return httpx.BadRequest(c, "date must be RFC3339")
		}
		date = d.UTC()
	}
	err := h.store.UpdateMediaLog(entities.MediaLog{
		ID:        c.Param("id"),
		Date:      date,
		MediaURL:  req.MediaURL,
		MediaType: entities.MediaType(req.MediaType),
		Note:      req.Note,
		Tags:      req.Tags,
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}

func (h *MediaCtrl) Delete(c echo.Context) error {
	if err := h.store.DeleteMediaLog(c.Param("id")); err != nil {
		return httpx.StoreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MediaCtrl) ToggleLike(c echo.Context) error {
	if err := h.store.ToggleMediaLogLike(c.Param("id")); err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}
