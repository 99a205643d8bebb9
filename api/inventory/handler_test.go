package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	coreinventory "github.com/tanishpoddar/logitrack/core/inventory"
	"github.com/tanishpoddar/logitrack/core/model"
)

func TestStatusHandler(t *testing.T) {
	h := NewStatusHandler(coreinventory.NewSampleStore(), "")

	req := httptest.NewRequest("GET", "/api/inventory", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Status         coreinventory.Status `json:"status"`
		InventoryValue string               `json:"inventory_value"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status.WarehouseCount != 3 {
		t.Errorf("warehouse count %d", out.Status.WarehouseCount)
	}
	if out.InventoryValue == "" {
		t.Error("missing inventory value")
	}
}

func TestOrdersHandler_Scopes(t *testing.T) {
	h := NewOrdersHandler(coreinventory.NewSampleStore(), "")

	counts := map[string]int{"all": 5, "urgent": 2}
	for scope, want := range counts {
		req := httptest.NewRequest("GET", "/api/orders?scope="+scope, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: status %d", scope, rr.Code)
		}
		var out []model.Order
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s: unmarshal: %v", scope, err)
		}
		if len(out) != want {
			t.Errorf("%s: got %d orders, want %d", scope, len(out), want)
		}
	}

	req := httptest.NewRequest("GET", "/api/orders?scope=bogus", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d for bad scope", rr.Code)
	}
}

func TestSuppliersHandler(t *testing.T) {
	h := NewSuppliersHandler(coreinventory.NewSampleStore(), "")

	req := httptest.NewRequest("GET", "/api/suppliers", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out []model.Supplier
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 3 || out[0].ID != "SUP001" {
		t.Errorf("unexpected suppliers: %+v", out)
	}
}

func TestReorderHandler_Auth(t *testing.T) {
	h := NewReorderHandler(coreinventory.NewSampleStore(), "tok")

	req := httptest.NewRequest("GET", "/api/reorder", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status %d without token", rr.Code)
	}

	req = httptest.NewRequest("GET", "/api/reorder", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d with token", rr.Code)
	}
	var out []model.Product
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("got %d reorder needs", len(out))
	}
}
