package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
	"github.com/regarstore/v0-xl-kuota-website/events"
	"github.com/regarstore/v0-xl-kuota-website/models"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

const testSession = "guest_handlers"

func newTestRouter(cartStore store.CartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("session_id", testSession) })

	cat := catalog.New()
	r.GET("/cart", GetCart(cartStore))
	r.GET("/cart/count", GetCartCount(cartStore))
	r.POST("/cart", AddToCart(cartStore, cat))
	r.PUT("/cart/:product_id", UpdateCartItem(cartStore))
	r.DELETE("/cart/:product_id", RemoveCartItem(cartStore))
	r.DELETE("/cart", ClearCart(cartStore))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: bad response body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, resp
}

func TestAddToCartHandler(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	r := newTestRouter(cartStore)

	t.Run("unknown product -> 400", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"999"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if resp["error"] != "Product does not exist" {
			t.Fatalf("unexpected error %v", resp["error"])
		}
	})

	t.Run("first add -> new line", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"2"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", w.Code, resp)
		}
		if resp["message"] != "Ditambahkan ke keranjang" {
			t.Fatalf("unexpected message %v", resp["message"])
		}
		if resp["count"].(float64) != 1 || resp["subtotal"].(float64) != 50000 {
			t.Fatalf("unexpected totals: %v", resp)
		}
	})

	t.Run("second add -> incremented quantity", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"2"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if resp["message"] != "Jumlah diperbarui" {
			t.Fatalf("unexpected message %v", resp["message"])
		}
		if resp["count"].(float64) != 2 || resp["subtotal"].(float64) != 100000 {
			t.Fatalf("unexpected totals: %v", resp)
		}
	})
}

func TestUpdateCartItemHandler(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	seed := models.CartItems{{ID: 2, Name: "XL Regular", Data: "8 GB", Validity: "30 Hari", Price: 50000, Quantity: 2}}
	if err := cartStore.Save(context.Background(), testSession, seed); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	r := newTestRouter(cartStore)

	t.Run("valid quantity", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPut, "/cart/2", `{"quantity":5}`)
		if w.Code != http.StatusOK || resp["updated"] != true {
			t.Fatalf("expected updated=true, got %d %v", w.Code, resp)
		}
		if resp["subtotal"].(float64) != 250000 {
			t.Fatalf("unexpected subtotal %v", resp["subtotal"])
		}
	})

	t.Run("quantity below one is a no-op", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPut, "/cart/2", `{"quantity":0}`)
		if w.Code != http.StatusOK || resp["updated"] != false {
			t.Fatalf("expected updated=false, got %d %v", w.Code, resp)
		}
		items := cartStore.Load(context.Background(), testSession)
		if items[0].Quantity != 5 {
			t.Fatalf("quantity changed by rejected update: %+v", items)
		}
	})
}

func TestRemoveAndCount(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	seed := models.CartItems{
		{ID: 2, Name: "XL Regular", Data: "8 GB", Validity: "30 Hari", Price: 50000, Quantity: 1},
		{ID: 6, Name: "XL Mini", Data: "1 GB", Validity: "1 Hari", Price: 5000, Quantity: 2},
	}
	if err := cartStore.Save(context.Background(), testSession, seed); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	r := newTestRouter(cartStore)

	w, resp := doJSON(t, r, http.MethodGet, "/cart/count", "")
	if w.Code != http.StatusOK || resp["count"].(float64) != 3 {
		t.Fatalf("expected count 3, got %d %v", w.Code, resp)
	}

	w, resp = doJSON(t, r, http.MethodDelete, "/cart/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["count"].(float64) != 2 {
		t.Fatalf("expected count 2 after removal, got %v", resp["count"])
	}

	// Removing it again is a no-op, not an error.
	w, resp = doJSON(t, r, http.MethodDelete, "/cart/2", "")
	if w.Code != http.StatusOK || resp["count"].(float64) != 2 {
		t.Fatalf("expected idempotent removal, got %d %v", w.Code, resp)
	}
}

func TestCountForFreshSession(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	r := newTestRouter(cartStore)

	// The badge shows zero for a fresh session even though the cart view
	// would show the demo cart.
	w, resp := doJSON(t, r, http.MethodGet, "/cart/count", "")
	if w.Code != http.StatusOK || resp["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %d %v", w.Code, resp)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/cart", "")
	if w.Code != http.StatusOK || resp["count"].(float64) != 3 {
		t.Fatalf("expected demo cart count 3, got %d %v", w.Code, resp)
	}
}
