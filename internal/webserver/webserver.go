// Package webserver hosts the echo instance serving the admin API.
package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/talkincode/inventorypro/internal/app"
	"go.uber.org/zap"
)

const appContextKey = "inventorypro_app"

var server *WebServer

// WebServer wraps the echo root and the authenticated /api group.
type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	app  app.AppContext
}

// Init builds the web server and installs the shared middleware chain.
func Init(appCtx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = appCtx.Config().Web.Debug

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, appCtx)
			return next(c)
		}
	})

	api := e.Group("/api")
	api.Use(sessionTokenMiddleware(appCtx))

	server = &WebServer{root: e, api: api, app: appCtx}
	return server
}

// Listen starts serving on the configured address and blocks.
func Listen() error {
	cfg := server.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("admin api listening", zap.String("addr", addr))
	return server.root.Start(addr)
}

// Shutdown stops the http server.
func Shutdown() error {
	return server.root.Close()
}

// Root exposes the echo instance (used in tests).
func Root() *echo.Echo {
	return server.root
}

// PubPOST registers an unauthenticated route.
func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// GetApp extracts the application context injected by Init's middleware.
func GetApp(c echo.Context) app.AppContext {
	return c.Get(appContextKey).(app.AppContext)
}

// sessionTokenMiddleware checks the bearer token issued by the login
// endpoint. The login gate is simulated: tokens are signed but carry no real
// identity, and only signature and expiry are verified here.
func sessionTokenMiddleware(appCtx app.AppContext) echo.MiddlewareFunc {
	secret := []byte(appCtx.Config().Web.Secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			if tokenStr == "" || tokenStr == auth {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}
			_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			return next(c)
		}
	}
}
