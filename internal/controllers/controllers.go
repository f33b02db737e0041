package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/fleet"
)

// engine is wired once from main; every lifecycle and analytics handler
// goes through it. Plain CRUD talks to config.DB directly.
var engine *fleet.Engine

// Init wires the fleet engine into the handler package.
func Init(e *fleet.Engine) {
	engine = e
}

// principalFrom rebuilds the authenticated principal from the JWT claims
// the auth middleware stashed on the context.
func principalFrom(c *gin.Context) fleet.Principal {
	var p fleet.Principal
	if v, ok := c.Get("user_id"); ok {
		if f, ok := v.(float64); ok {
			p.UserID = uint(f)
		}
	}
	if v, ok := c.Get("name"); ok {
		if s, ok := v.(string); ok {
			p.Name = s
		}
	}
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			if role, valid := fleet.ParseRole(s); valid {
				p.Role = role
			}
		}
	}
	return p
}

// respondCoreError maps the core error taxonomy onto HTTP statuses.
// Validation problems are the caller's to fix; storage failures are safe
// to retry because the engine never commits a partial transition.
func respondCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case fleet.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, fleet.ErrStorage):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary storage failure, please retry."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
