package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sietse/jobboard/internal/api/dto"
)

func TestShowTagListsAssociatedJobs(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")
	env.createJob(t, token, map[string]interface{}{"title": "First Role", "tags": "remote,senior"})
	env.createJob(t, token, map[string]interface{}{"title": "Second Role", "tags": "remote"})
	env.createJob(t, token, map[string]interface{}{"title": "Third Role", "tags": "junior"})

	w := env.request(t, http.MethodGet, "/tags/remote", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	var resp dto.TagJobsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Tag.Name != "remote" {
		t.Errorf("expected tag remote, got %q", resp.Tag.Name)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 jobs carrying the tag, got %d", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.Title == "Third Role" {
			t.Errorf("job without the tag leaked into the listing: %q", item.Title)
		}
	}
}

func TestShowTagMatchesCaseInsensitively(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")
	env.createJob(t, token, map[string]interface{}{"tags": "Remote"})

	// Tag names are stored lowercase; lookups normalize the same way
	w := env.request(t, http.MethodGet, "/tags/Remote", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	var resp dto.TagJobsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Tag.Name != "remote" {
		t.Errorf("expected the normalized tag name, got %q", resp.Tag.Name)
	}
	if len(resp.Items) != 1 {
		t.Errorf("expected 1 job, got %d", len(resp.Items))
	}
}

func TestShowTagUnknownName(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/tags/nonexistent", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
