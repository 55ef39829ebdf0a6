// Package api exposes the engine façade over HTTP using gin, the way
// the teacher's api package wraps its engine for its index-scoped
// routes, scaled down to a single always-present engine instance.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidx-engine/internal/engine"
	"github.com/gcbaptista/tfidx-engine/model"
)

// API holds the dependencies handlers need.
type API struct {
	engine *engine.Engine
}

// NewAPI creates a new API handler structure.
func NewAPI(e *engine.Engine) *API {
	return &API{engine: e}
}

// SetupRoutes registers every route on router.
func SetupRoutes(router *gin.Engine, e *engine.Engine) {
	a := NewAPI(e)

	router.Use(RequestLogger(nil))

	router.GET("/health", a.HealthCheckHandler)

	router.POST("/documents", a.AddDocumentHandler)
	router.DELETE("/documents/:id", a.RemoveDocumentHandler)
	router.GET("/documents", a.ListDocumentIDsHandler)
	router.GET("/documents/count", a.DocumentCountHandler)
	router.GET("/documents/:id/frequencies", a.WordFrequenciesHandler)
	router.GET("/documents/:id/match", a.MatchHandler)

	router.GET("/search", a.SearchHandler)
}

// HealthCheckHandler reports liveness.
func (a *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type addDocumentRequest struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Status  string `json:"status"`
	Ratings []int  `json:"ratings"`
}

// AddDocumentHandler handles POST /documents.
func (a *API) AddDocumentHandler(c *gin.Context) {
	var req addDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidDocument, err.Error())
		return
	}

	if err := a.engine.AddDocument(req.ID, req.Text, status, req.Ratings); err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

// RemoveDocumentHandler handles DELETE /documents/:id. The query
// parameter parallel=true routes to RemoveDocumentParallel.
func (a *API) RemoveDocumentHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidID, err.Error())
		return
	}

	if c.Query("parallel") == "true" {
		err = a.engine.RemoveDocumentParallel(id)
	} else {
		err = a.engine.RemoveDocument(id)
	}
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListDocumentIDsHandler handles GET /documents.
func (a *API) ListDocumentIDsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": a.engine.IterateIDs()})
}

// DocumentCountHandler handles GET /documents/count.
func (a *API) DocumentCountHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": a.engine.DocumentCount()})
}

// WordFrequenciesHandler handles GET /documents/:id/frequencies.
func (a *API) WordFrequenciesHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidID, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"frequencies": a.engine.GetWordFrequencies(id)})
}

// MatchHandler handles GET /documents/:id/match?q=.... The query
// parameter parallel=true routes to MatchParallel.
func (a *API) MatchHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidID, err.Error())
		return
	}
	query := c.Query("q")

	var result model.Match
	if c.Query("parallel") == "true" {
		result, err = a.engine.MatchParallel(query, id)
	} else {
		result, err = a.engine.Match(query, id)
	}
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchHandler handles GET /search?q=...&status=...&parallel=true.
func (a *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	status, err := parseStatus(c.DefaultQuery("status", "actual"))
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
		return
	}

	var results []model.Result
	if c.Query("parallel") == "true" {
		results, err = a.engine.FindTopByStatusParallel(query, status)
	} else {
		results, err = a.engine.FindTopByStatus(query, status)
	}
	if err != nil {
		SendEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func parseIDParam(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func parseStatus(raw string) (model.Status, error) {
	switch raw {
	case "", "actual":
		return model.Actual, nil
	case "irrelevant":
		return model.Irrelevant, nil
	case "banned":
		return model.Banned, nil
	case "removed":
		return model.Removed, nil
	default:
		return 0, &unknownStatusError{raw}
	}
}

type unknownStatusError struct{ raw string }

func (e *unknownStatusError) Error() string { return "unknown status: " + e.raw }
