package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/inventorypro/internal/webserver"
	"go.uber.org/zap"
)

func registerAuthRoutes() {
	webserver.PubPOST("/api/login", login)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login is the simulated license gate. Any non-empty username is accepted
// after a short artificial delay; no credential verification happens. The
// issued token exists so the rest of the API has a session shape to check,
// not as a security boundary.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login", err.Error())
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username is required", nil)
	}

	// Simulated verification delay.
	time.Sleep(800 * time.Millisecond)

	cfg := webserver.GetApp(c).Config().Web
	claims := jwt.MapClaims{
		"sub": payload.Username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue session token", err.Error())
	}

	zap.L().Info("operator logged in", zap.String("username", payload.Username))
	return ok(c, map[string]string{"token": token})
}
