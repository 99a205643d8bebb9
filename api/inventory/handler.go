package inventory

import (
	"encoding/json"
	"net/http"
	"time"

	coreinventory "github.com/tanishpoddar/logitrack/core/inventory"
)

// NewStatusHandler returns an HTTP handler exposing the inventory overview
// via GET /api/inventory. Requests must include an Authorization header
// with "Bearer <token>" when token is non-empty.
func NewStatusHandler(store *coreinventory.Store, token string) http.Handler {
	return handler(token, func(w http.ResponseWriter, r *http.Request) (any, error) {
		type payload struct {
			Status         coreinventory.Status `json:"status"`
			InventoryValue string               `json:"inventory_value"`
			Warehouses     any                  `json:"warehouses"`
			Utilization    any                  `json:"warehouse_utilization"`
		}
		return payload{
			Status:         store.InventoryStatus(time.Now()),
			InventoryValue: coreinventory.FormatCurrency(store.InventoryValue()),
			Warehouses:     store.Warehouses(),
			Utilization:    store.WarehouseUtilization(),
		}, nil
	})
}

// NewOrdersHandler returns an HTTP handler exposing orders via
// GET /api/orders. The scope query parameter selects "pending", "urgent",
// "history" or "all" (the default).
func NewOrdersHandler(store *coreinventory.Store, token string) http.Handler {
	return handler(token, func(w http.ResponseWriter, r *http.Request) (any, error) {
		switch r.URL.Query().Get("scope") {
		case "", "all":
			return store.Orders(), nil
		case "pending":
			return store.PendingOrders(time.Now()), nil
		case "urgent":
			return store.UrgentOrders(), nil
		case "history":
			return store.OrderHistory(time.Now()), nil
		default:
			return nil, errBadScope
		}
	})
}

// NewSuppliersHandler returns an HTTP handler exposing supplier performance
// via GET /api/suppliers, best reliability first.
func NewSuppliersHandler(store *coreinventory.Store, token string) http.Handler {
	return handler(token, func(w http.ResponseWriter, r *http.Request) (any, error) {
		return store.SupplierPerformance(), nil
	})
}

// NewReorderHandler returns an HTTP handler exposing products at or below
// their reorder point via GET /api/reorder.
func NewReorderHandler(store *coreinventory.Store, token string) http.Handler {
	return handler(token, func(w http.ResponseWriter, r *http.Request) (any, error) {
		return store.ReorderNeeds(), nil
	})
}

type badScopeError struct{}

func (badScopeError) Error() string { return "unknown scope" }

var errBadScope = badScopeError{}

func handler(token string, fn func(http.ResponseWriter, *http.Request) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := fn(w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
