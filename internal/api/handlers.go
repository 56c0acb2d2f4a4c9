package api

import (
	"errors"

	"github.com/terraincognita07/fitplanner/internal/services"
)

type Handler struct {
	store *services.SessionStore
	plans *services.PlanService
	demo  *services.DemoSessionService
}

func NewHandler(store *services.SessionStore, generator services.PlanGenerator) (*Handler, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if generator == nil {
		return nil, errors.New("plan generator is required")
	}

	return &Handler{
		store: store,
		plans: services.NewPlanService(store, generator),
		demo:  services.NewDemoSessionService(store),
	}, nil
}

type workoutRequest struct {
	Mood string `json:"mood"`
}

type weightRequest struct {
	Weight *float64 `json:"weight"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}
