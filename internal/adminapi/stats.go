package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/talkincode/inventorypro/internal/query"
	"github.com/talkincode/inventorypro/internal/webserver"
	"github.com/talkincode/inventorypro/pkg/metrics"
)

func registerStatsRoutes() {
	webserver.ApiGET("/stats", getStats)
	webserver.ApiGET("/metrics/:name", getMetricRange)
}

func getStats(c echo.Context) error {
	products := webserver.GetApp(c).Inventory().Products()
	return ok(c, query.ComputeStats(products))
}

// getMetricRange returns recent samples of a recorded gauge. The window is
// given in hours, default 24.
func getMetricRange(c echo.Context) error {
	hours := cast.ToInt(c.QueryParam("hours"))
	if hours <= 0 || hours > 24*7 {
		hours = 24
	}
	points, err := metrics.GetRange(c.Param("name"), time.Duration(hours)*time.Hour)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "METRICS_ERROR", "Failed to query metrics", err.Error())
	}
	return ok(c, points)
}
