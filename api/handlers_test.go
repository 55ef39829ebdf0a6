package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidx-engine/internal/engine"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e, err := engine.New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := gin.New()
	SetupRoutes(router, e)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddDocumentThenSearch(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/documents", `{"id":1,"text":"кот и пёс","ratings":[5]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	w2 := doRequest(router, http.MethodGet, "/search?q=кот", "")
	if w2.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w2.Code, w2.Body.String())
	}
	var resp struct {
		Results []struct{ ID int } `json:"results"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 1 {
		t.Fatalf("got %+v", resp.Results)
	}
}

func TestAddDocumentInvalidIDReturnsBadRequest(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodPost, "/documents", `{"id":-1,"text":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRemoveUnknownDocumentReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodDelete, "/documents/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWordFrequenciesUnknownIDIsEmptyNotError(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/documents/404/frequencies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}
}
