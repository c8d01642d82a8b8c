package resp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation -> 400", apperr.Validation("bad"), http.StatusBadRequest},
		{"unauthorized -> 401", apperr.Unauthorized("who"), http.StatusUnauthorized},
		{"forbidden -> 403", apperr.Forbidden("no"), http.StatusForbidden},
		{"not found -> 404", apperr.NotFound("gone"), http.StatusNotFound},
		{"conflict -> 409", apperr.Conflict("dup"), http.StatusConflict},
		{"upstream -> 502", apperr.Upstream("down", errors.New("eof")), http.StatusBadGateway},
		{"wrapped app error keeps kind", fmt.Errorf("ctx: %w", apperr.NotFound("gone")), http.StatusNotFound},
		{"plain error -> 500", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOf(tc.err); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestFailDoesNotLeakInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) { Fail(c, errors.New("near \"SELEC\": syntax error")) })
	r.GET("/missing", func(c *gin.Context) { Fail(c, apperr.NotFound("Order not found")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != internalMessage {
		t.Fatalf("error = %q", body["error"])
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	body = nil
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Order not found" {
		t.Fatalf("error = %q", body["error"])
	}
}
