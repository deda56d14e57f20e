package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lawncare/entities"
	"lawncare/pkg/httpx"
	"lawncare/pkg/store/service"
)

type ProfileCtrl struct{ store service.Store }

func New(store service.Store) *ProfileCtrl { return &ProfileCtrl{store} }

type patchProfileReq struct {
	Area           *float64 `json:"area" validate:"omitempty,gt=0"`
	GrassType      *string  `json:"grass_type" validate:"omitempty,oneof=Bermuda Zoysia StAugustine Fescue"`
	TargetHeight   *float64 `json:"target_height" validate:"omitempty,gt=0"`
	MowerType      *string  `json:"mower_type" validate:"omitempty,oneof=Rotary Reel"`
	IrrigationRate *float64 `json:"irrigation_rate" validate:"omitempty,gte=0"`
}

func (r patchProfileReq) patch() service.ProfilePatch {
	p := service.ProfilePatch{
		Area:           r.Area,
		TargetHeight:   r.TargetHeight,
		IrrigationRate: r.IrrigationRate,
	}
	if r.GrassType != nil {
		g := entities.GrassType(*r.GrassType)
		p.GrassType = &g
	}
	if r.MowerType != nil {
		m := entities.MowerType(*r.MowerType)
		p.MowerType = &m
	}
	return p
}

func (h *ProfileCtrl) GetProfile(c echo.Context) error {
	p, err := h.store.Profile()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// PatchProfile merges the body into the profile and rebuilds the task
// schedule from the result in one store command.
func (h *ProfileCtrl) PatchProfile(c echo.Context) error {
	var req patchProfileReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	p, tasks, err := h.store.ApplyProfile(req.patch())
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": p, "tasks": tasks})
}

func (h *ProfileCtrl) ListFertilizers(c echo.Context) error {
	out, err := h.store.Fertilizers()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type fertilizerReq struct {
	Name               string  `json:"name" validate:"required,max=120"`
	NitrogenPercentage float64 `json:"nitrogen_percentage" validate:"gte=0,max=100"`
}

func (h *ProfileCtrl) UpdateFertilizer(c echo.Context) error {
	var req fertilizerReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	err := h.store.UpdateFertilizer(entities.Fertilizer{
		ID:                 c.Param("id"),
		Name:               req.Name,
		NitrogenPercentage: req.NitrogenPercentage,
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}

func (h *ProfileCtrl) GetWages(c echo.Context) error {
	w, err := h.store.Wages()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

type wagesReq struct {
	Father float64 `json:"father" validate:"gte=0"`
	Mother float64 `json:"mother" validate:"gte=0"`
	Child  float64 `json:"child" validate:"gte=0"`
}

func (h *ProfileCtrl) UpdateWages(c echo.Context) error {
	var req wagesReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	if err := h.store.UpdateWages(entities.Wages{Father: req.Father, Mother: req.Mother, Child: req.Child}); err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}
