package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
)

func TestImgBBUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("key"); got != "k-123" {
			t.Errorf("key = %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("image"); got != "QUJD" {
			t.Errorf("image = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"url":"https://i.ibb.co/x/y.png"},"success":true,"status":200}`))
	}))
	defer srv.Close()

	g := NewImgBB("k-123", srv.URL, time.Second)
	got, err := g.Upload(context.Background(), "QUJD")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if got != "https://i.ibb.co/x/y.png" {
		t.Fatalf("url = %q", got)
	}
}

func TestImgBBUploadProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status_code":400,"error":{"message":"Invalid API v1 key.","code":100},"success":false}`))
	}))
	defer srv.Close()

	_, err := NewImgBB("bad", srv.URL, time.Second).Upload(context.Background(), "QUJD")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
	if got := apperr.Message(err); got != "Image upload failed: Invalid API v1 key." {
		t.Fatalf("message = %q", got)
	}
}

func TestImgBBUploadTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewImgBB("k", srv.URL, 20*time.Millisecond).Upload(context.Background(), "QUJD")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
	if !strings.HasPrefix(apperr.Message(err), "Image upload failed: ") {
		t.Fatalf("message = %q", apperr.Message(err))
	}
}
