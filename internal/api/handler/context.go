package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// actor is the authenticated identity extracted from the Auth middleware.
type actor struct {
	ID    string
	Email string
	Role  string
}

// ctxActor reads the auth claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a missing role means the
// middleware never ran or the token carried no usable identity.
func ctxActor(c echo.Context) (actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	return actor{ID: id, Email: email, Role: role}, nil
}
