package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes mounts all API endpoints on the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	flights := v1.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.POST("/matrix", h.PriceMatrix)

	v1.GET("/offers/:id", h.GetOffer)
	v1.POST("/orders", h.CreateOrder)

	deals := v1.Group("/deals")
	deals.GET("/last-minute", h.LastMinuteDeals)
	deals.GET("/mistake-fares", h.MistakeFares)

	v1.POST("/search/parse", h.ParseQuery)
}
