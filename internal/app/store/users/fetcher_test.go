package userstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

const directoryPayload = `{
	"users": [
		{
			"id": 1,
			"firstName": "Ada",
			"lastName": "Lovelace",
			"email": "ada@example.com",
			"status": "online",
			"role": "Admin",
			"lastActive": "2025-03-22T10:00:00Z",
			"loginHistory": [
				{"id": 1, "date": "2025-03-22T10:00:00Z", "device": "desktop", "browser": "Chrome", "ip": "203.0.113.5"}
			]
		},
		{"id": 2, "firstName": "Grace", "lastName": "Hopper", "email": "grace@example.com", "status": "away", "role": "User"}
	]
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directoryPayload))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	users, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].FirstName != "Ada" || users[0].Role != "Admin" {
		t.Errorf("users[0] = %+v", users[0])
	}
	if len(users[0].LoginHistory) != 1 || users[0].LoginHistory[0].Browser != "Chrome" {
		t.Errorf("login history = %+v", users[0].LoginHistory)
	}
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for upstream 500")
	}
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": [`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestSync_ReplacesWorkingSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(directoryPayload))
	}))
	defer srv.Close()

	store := New()
	if err := store.Replace(seedUsers()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	before := store.LastSync()

	f := NewFetcher(srv.URL, zap.NewNop())
	n, err := f.Sync(context.Background(), store)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if n != 2 {
		t.Errorf("synced %d users, want 2", n)
	}
	if store.Count() != 2 {
		t.Errorf("Count = %d, want 2", store.Count())
	}
	if !store.LastSync().After(before) && !store.LastSync().Equal(before) {
		t.Error("LastSync did not advance")
	}
}

func TestSync_FailureLeavesStoreUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := New()
	if err := store.Replace(seedUsers()); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	f := NewFetcher(srv.URL, zap.NewNop())
	if _, err := f.Sync(context.Background(), store); err == nil {
		t.Fatal("expected sync error")
	}
	if store.Count() != 3 {
		t.Errorf("Count = %d after failed sync, want 3", store.Count())
	}
}
