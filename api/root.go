package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root serves GET /: a discovery document with absolute URLs for the other
// endpoints, built from the incoming request.
func Root(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host

	respondSuccess(c, http.StatusOK, gin.H{
		"register":           base + "/register/",
		"login":              base + "/login/",
		"logout":             base + "/logout/",
		"available_rooms":    base + "/available/",
		"reserve_room":       base + "/reserve/",
		"my_bookings":        base + "/bookings/",
		"cancel_reservation": base + "/bookings/cancel/",
	}, "")
}
