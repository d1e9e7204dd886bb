package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
)

// Handlers contains HTTP route handlers for the API.
type Handlers struct {
	store   store.Store
	cfg     *config.Config
	version string
}

// HandleCreate handles POST /strings — analyze and store a string.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	value, err := decodeValue(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		renderError(w, err)
		return
	}

	rec, err := ops.Create(r.Context(), h.store, h.cfg, ops.CreateInput{Value: &value})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, rec)
}

// HandleFetch handles GET /strings/{value} — look up one string.
func (h *Handlers) HandleFetch(w http.ResponseWriter, r *http.Request) {
	rec, err := ops.Fetch(r.Context(), h.store, ops.FetchInput{Value: r.PathValue("value")})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, rec)
}

// HandleDelete handles DELETE /strings/{value}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := ops.Delete(r.Context(), h.store, ops.DeleteInput{Value: r.PathValue("value")}); err != nil {
		renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /strings — list strings matching query-parameter filters.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := ops.List(r.Context(), h.store, ops.ListInput{
		Filters: filter.FromValues(r.URL.Query()),
	})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, out)
}

// HandleQuery handles GET /strings/filter-by-natural-language?query=...
func (h *Handlers) HandleQuery(w http.ResponseWriter, r *http.Request) {
	queries := r.URL.Query()["query"]
	if len(queries) != 1 {
		renderError(w, errors.NewInvalidRequest("query parameter is required and must be given once"))
		return
	}

	out, err := ops.Query(r.Context(), h.store, ops.QueryInput{Query: queries[0]})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, out)
}

// HandleDocs handles GET / — the rendered API overview.
func (h *Handlers) HandleDocs(w http.ResponseWriter, r *http.Request) {
	renderDocs(w, h.version)
}

// decodeValue extracts "value" from a JSON body. An absent, null, false, zero
// or empty value is a bad request; any other non-string is INVALID_TYPE.
func decodeValue(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", errors.NewInvalidRequest("could not read request body")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.NewInvalidRequest("no request body provided")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", errors.NewInvalidRequest("request body must be a JSON object")
	}

	raw, ok := fields["value"]
	if !ok {
		return "", errors.NewInvalidRequest("value is required")
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", errors.NewInvalidRequest("value is not valid JSON")
	}

	switch typed := v.(type) {
	case nil:
		return "", errors.NewInvalidRequest("value is required")
	case string:
		if typed == "" {
			return "", errors.NewInvalidRequest("value is required")
		}
		return typed, nil
	case bool:
		if !typed {
			return "", errors.NewInvalidRequest("value is required")
		}
	case float64:
		if typed == 0 {
			return "", errors.NewInvalidRequest("value is required")
		}
	}
	return "", errors.NewInvalidType("value", "string")
}
