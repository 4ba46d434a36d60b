package response

import (
	"time"

	"game-ghor/internal/data/entity"
)

type GameResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Platforms      []string  `json:"platforms"`
	Categories     []string  `json:"categories"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	PaymentMethods []string  `json:"payment_methods"`
	PaymentModes   []string  `json:"payment_modes"`
	CreatedAt      time.Time `json:"created_at"`
}

func GameToResponse(game *entity.Game) GameResponse {
	methods := make([]string, len(game.PaymentMethods))
	for i, m := range game.PaymentMethods {
		methods[i] = string(m)
	}
	modes := make([]string, len(game.PaymentModes))
	for i, m := range game.PaymentModes {
		modes[i] = string(m)
	}

	return GameResponse{
		ID:             game.ID.String(),
		Title:          game.Title,
		Description:    game.Description,
		Platforms:      game.Platforms,
		Categories:     game.Categories,
		Price:          game.Price,
		ImageURL:       game.ImageURL,
		IsActive:       game.IsActive,
		PaymentMethods: methods,
		PaymentModes:   modes,
		CreatedAt:      game.CreatedAt,
	}
}

func GamesToResponse(games []*entity.Game) []GameResponse {
	out := make([]GameResponse, len(games))
	for i, g := range games {
		out[i] = GameToResponse(g)
	}
	return out
}
