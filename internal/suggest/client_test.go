package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuggestParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/suggest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("text"); got != "мос" {
			t.Errorf("text = %q", got)
		}
		w.Write([]byte(`{"results":[
			{"title":{"text":"Москва"},"subtitle":{"text":"Россия"},"tags":["locality"]},
			{"title":{"text":"Шереметьево"},"subtitle":{"text":"Москва"},"tags":["airport"]}
		]}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "").Suggest(context.Background(), "мос", 7)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Title != "Москва" || got[0].Kind != "city" {
		t.Errorf("first suggestion: %+v", got[0])
	}
	if got[1].Kind != "airport" {
		t.Errorf("airport tag lost: %+v", got[1])
	}
}

func TestSuggestNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "").Suggest(context.Background(), "spb", 5); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
