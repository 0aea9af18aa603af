package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/inventorypro/internal/domain"
	"github.com/talkincode/inventorypro/internal/query"
	"github.com/talkincode/inventorypro/internal/webserver"
)

// registerProductRoutes registers the product CRUD and assistant endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiPUT("/products/:id/stock", adjustProductStock)
	webserver.ApiDELETE("/products/:id", deleteProduct)
	webserver.ApiPOST("/products/describe", describeProduct)
	webserver.ApiPOST("/products/:id/stock/advice", stockAdvice)
}

// listProducts returns the filtered view in store order, paginated, together
// with the derived stats of the full collection.
func listProducts(c echo.Context) error {
	var spec domain.FilterSpec
	if err := c.Bind(&spec); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse filter", err.Error())
	}

	page, pageSize := parsePagination(c)

	products := webserver.GetApp(c).Inventory().Products()
	filtered := query.Filter(products, spec)
	total := int64(len(filtered))

	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return paged(c, filtered[start:end], total, page, pageSize)
}

func getProduct(c echo.Context) error {
	p, found := webserver.GetApp(c).Inventory().Get(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

// validateForm applies the structural checks the store itself trusts callers
// to have done.
func validateForm(form *domain.ProductFormData) (string, bool) {
	form.Name = strings.TrimSpace(form.Name)
	form.SKU = strings.TrimSpace(form.SKU)
	if form.Name == "" {
		return "Name is required", false
	}
	if form.Stock < 0 {
		return "Stock must be >= 0", false
	}
	if form.BuyPrice < 0 || form.SellPrice < 0 {
		return "Prices must be >= 0", false
	}
	if form.LowStockThreshold < 0 {
		return "Low stock threshold must be >= 0", false
	}
	return "", true
}

func createProduct(c echo.Context) error {
	var form domain.ProductFormData
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := validateForm(&form); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	p := webserver.GetApp(c).Inventory().Add(form)
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	var form domain.ProductFormData
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := validateForm(&form); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	p, found := webserver.GetApp(c).Inventory().Update(c.Param("id"), form)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

type stockPayload struct {
	// Stock sets an absolute quantity; Delta adjusts relative to the current
	// one. Exactly one of the two is expected.
	Stock *int `json:"stock"`
	Delta *int `json:"delta"`
}

func adjustProductStock(c echo.Context) error {
	var payload stockPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse stock change", err.Error())
	}
	if payload.Stock == nil && payload.Delta == nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "stock or delta is required", nil)
	}

	inv := webserver.GetApp(c).Inventory()
	id := c.Param("id")

	newStock := 0
	if payload.Stock != nil {
		newStock = *payload.Stock
	} else {
		current, found := inv.Get(id)
		if !found {
			return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
		}
		newStock = current.Stock + *payload.Delta
	}

	p, found := inv.AdjustStock(id, newStock)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	webserver.GetApp(c).Inventory().Remove(id)
	return ok(c, map[string]interface{}{"id": id})
}

type describePayload struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Tags string `json:"tags"`
}

// describeProduct asks the assistant for sales copy. The result is returned
// to the caller only; applying it to a product is the caller's decision.
func describeProduct(c echo.Context) error {
	var payload describePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}

	text := webserver.GetApp(c).Assistant().
		GenerateDescription(c.Request().Context(), payload.Name, payload.Tags)
	return ok(c, map[string]string{"description": text})
}

type advicePayload struct {
	Trend string `json:"trend"`
}

func stockAdvice(c echo.Context) error {
	var payload advicePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}

	a := webserver.GetApp(c)
	p, found := a.Inventory().Get(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	trend := payload.Trend
	if trend == "" {
		trend = "stable"
	}
	text := a.Assistant().AnalyzeStockAction(c.Request().Context(), p.Name, p.Stock, trend)
	return ok(c, map[string]string{"recommendation": text})
}
