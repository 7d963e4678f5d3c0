package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/usuarios-api/pkg/response"
)

// Health returns the liveness handler for GET /health.
func Health(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, http.StatusOK, "Servidor funcionando correctamente", gin.H{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
		})
	}
}

// NotFound answers any unmatched route with a JSON envelope instead of gin's
// default empty body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Ruta "+c.Request.URL.Path+" no encontrada")
	}
}
