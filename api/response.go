package api

import "github.com/gin-gonic/gin"

// envelope is the uniform response wrapper: status is "success" or "error",
// data carries the payload, details a human-readable message.
type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Details interface{} `json:"details"`
}

func respondSuccess(c *gin.Context, code int, data interface{}, details string) {
	var d interface{}
	if details != "" {
		d = details
	}
	c.JSON(code, envelope{Status: "success", Data: data, Details: d})
}

func respondError(c *gin.Context, code int, details string) {
	c.JSON(code, envelope{Status: "error", Data: nil, Details: details})
}
