package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sietse/jobboard/internal/api/dto"
)

func searchFor(t *testing.T, env *testEnv, query string) dto.SearchResponse {
	t.Helper()

	w := env.request(t, http.MethodGet, "/search?q="+query, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search failed: status %d, body %s", w.Code, w.Body.String())
	}
	return parseSearchResponse(t, w)
}

func parseSearchResponse(t *testing.T, w *httptest.ResponseRecorder) dto.SearchResponse {
	t.Helper()

	var resp dto.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse search response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func TestSearchMatchesTitleSalaryAndLocation(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")
	env.createJob(t, token, map[string]interface{}{
		"title":    "Backend Developer",
		"salary":   "$90,000 USD",
		"location": "Remote",
	})
	env.createJob(t, token, map[string]interface{}{
		"title":    "Product Designer",
		"salary":   "$150,000 USD",
		"location": "Office",
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "title match is case-insensitive", query: "backend", want: 1},
		{name: "salary substring", query: "150", want: 1},
		{name: "location match", query: "remote", want: 1},
		{name: "no match", query: "haskell", want: 0},
		{name: "empty query returns everything", query: "", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := searchFor(t, env, tt.query)
			if len(resp.Items) != tt.want {
				t.Errorf("query %q: expected %d results, got %d", tt.query, tt.want, len(resp.Items))
			}
			if resp.Query != tt.query {
				t.Errorf("expected query %q echoed back, got %q", tt.query, resp.Query)
			}
		})
	}
}

func TestSearchLoadsRelations(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")
	env.createJob(t, token, map[string]interface{}{"tags": "remote,senior"})

	resp := searchFor(t, env, "backend")
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Items))
	}
	if resp.Items[0].Employer == nil {
		t.Error("expected the employer to be loaded")
	}
	if len(resp.Items[0].Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", resp.Items[0].Tags)
	}
}
