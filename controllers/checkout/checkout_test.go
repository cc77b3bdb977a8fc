package checkoutControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/checkout"
	"github.com/regarstore/v0-xl-kuota-website/events"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

const testSession = "guest_checkout_http"

func newTestRouter(cartStore store.CartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("session_id", testSession) })

	fin := checkout.NewFinalizer(cartStore, nil)
	r.GET("/checkout", GetCheckout(fin))
	r.POST("/checkout", SubmitCheckout(fin))
	return r
}

func do(t *testing.T, r *gin.Engine, method, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestGetCheckoutRedirectsOnEmptyCart(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	r := newTestRouter(cartStore)

	w, resp := do(t, r, http.MethodGet, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["state"] != "redirecting" || resp["redirect_to"] != "/cart" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestSubmitCheckout(t *testing.T) {
	cartStore := store.New(store.NewMemoryBackend(), events.NewLocalBus())
	if err := cartStore.Save(context.Background(), testSession, store.DefaultCart()); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	r := newTestRouter(cartStore)

	t.Run("incomplete form -> 400", func(t *testing.T) {
		w, resp := do(t, r, http.MethodPost,
			`{"customer":{"name":"Budi","email":"","phone":"0817"},"payment":{"type":"ewallet"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if resp["error"] != "Form tidak lengkap" {
			t.Fatalf("unexpected error %v", resp["error"])
		}
	})

	t.Run("complete form -> completed", func(t *testing.T) {
		w, resp := do(t, r, http.MethodPost,
			`{"customer":{"name":"Budi","email":"budi@example.com","phone":"0817"},"payment":{"type":"ewallet","provider":"ovo"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", w.Code, resp)
		}
		if resp["state"] != "completed" || resp["redirect_to"] != "/" {
			t.Fatalf("unexpected response %v", resp)
		}
		if resp["redirect_after_ms"].(float64) != 2000 {
			t.Fatalf("unexpected delay %v", resp["redirect_after_ms"])
		}
		if _, found, err := cartStore.Peek(context.Background(), testSession); found || err != nil {
			t.Fatalf("cart not cleared: found=%v err=%v", found, err)
		}
	})

	t.Run("cart now empty -> 409 redirect", func(t *testing.T) {
		w, resp := do(t, r, http.MethodPost,
			`{"customer":{"name":"Budi","email":"budi@example.com","phone":"0817"},"payment":{"type":"card"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if resp["redirect_to"] != "/cart" {
			t.Fatalf("unexpected response %v", resp)
		}
	})
}
