package api

import (
	"io"
	"net/http"
	"testing"

	json "github.com/json-iterator/go"
)

func TestReactToPost(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/api/posts/p1/react" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req ReactionRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("unmarshal request: %v", err)
		}
		if req.Type != "love" {
			t.Errorf("type = %s, want love", req.Type)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"post":{"reactions":[
			{"id":"r1","type":"love","userId":"u1","postId":"p1"}
		]}}`))
	})

	reactions, err := ReactToPost("p1", "love")
	if err != nil {
		t.Fatalf("ReactToPost: %v", err)
	}
	if len(reactions) != 1 || reactions[0].Type != "love" {
		t.Fatalf("reactions = %+v", reactions)
	}
}

func TestReactToPost_LegacyKey(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"post":{"Reaction":[
			{"id":"r2","type":"like","userId":"u2","postId":"p1"}
		]}}`))
	})

	reactions, err := ReactToPost("p1", "like")
	if err != nil {
		t.Fatalf("ReactToPost: %v", err)
	}
	if len(reactions) != 1 || reactions[0].ID != "r2" {
		t.Fatalf("reactions = %+v", reactions)
	}
}

func TestReactToPost_UnparseableBody(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// The write succeeded even though the body is junk, so the call
	// reports success with an empty reaction set.
	reactions, err := ReactToPost("p1", "like")
	if err != nil {
		t.Fatalf("ReactToPost: %v", err)
	}
	if reactions == nil || len(reactions) != 0 {
		t.Fatalf("reactions = %+v, want empty slice", reactions)
	}
}

func TestReactToPost_Unauthorized(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	})

	if _, err := ReactToPost("p1", "like"); err == nil {
		t.Fatal("expected error on 401")
	}
}
