package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

const testUserAgent = "Mozilla/5.0 (test)"

func newTestSearcher(url string) *ScrapeImageSearcher {
	return NewScrapeImageSearcher(url, testUserAgent, 2*time.Second)
}

func TestSearch_FirstFourInDocumentOrder(t *testing.T) {
	body := `<html><script>var d = ["https://img.example/1.jpg", "https://img.example/2.jpg",
	"https://img.example/3.jpg", "https://img.example/4.jpg", "https://img.example/5.jpg",
	"https://img.example/6.jpg"];</script></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	got := newTestSearcher(srv.URL).Search(context.Background(), "Tuver Totha")
	want := []string{
		"https://img.example/1.jpg",
		"https://img.example/2.jpg",
		"https://img.example/3.jpg",
		"https://img.example/4.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %v, want %v", got, want)
	}
}

func TestSearch_Non2xxReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `"https://img.example/1.jpg"`)
	}))
	defer srv.Close()

	got := newTestSearcher(srv.URL).Search(context.Background(), "Dal")
	if got == nil || len(got) != 0 {
		t.Errorf("Search = %#v, want empty non-nil slice", got)
	}
}

func TestSearch_NetworkErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := newTestSearcher(url).Search(context.Background(), "Dal")
	if got == nil || len(got) != 0 {
		t.Errorf("Search = %#v, want empty non-nil slice", got)
	}
}

func TestSearch_TimeoutReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `"https://img.example/1.jpg"`)
	}))
	defer srv.Close()

	s := NewScrapeImageSearcher(srv.URL, testUserAgent, 20*time.Millisecond)
	if got := s.Search(context.Background(), "Dal"); len(got) != 0 {
		t.Errorf("Search = %v, want empty on timeout", got)
	}
}

func TestSearch_NoMatchesReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<img src="https://img.example/a.png"> "http://img.example/b.jpg"`)
	}))
	defer srv.Close()

	got := newTestSearcher(srv.URL).Search(context.Background(), "Dal")
	if got == nil || len(got) != 0 {
		t.Errorf("Search = %#v, want empty non-nil slice", got)
	}
}

func TestSearch_NoDedupe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"https://img.example/1.jpg","https://img.example/1.jpg","https://img.example/2.jpg"`)
	}))
	defer srv.Close()

	got := newTestSearcher(srv.URL).Search(context.Background(), "Dal")
	want := []string{"https://img.example/1.jpg", "https://img.example/1.jpg", "https://img.example/2.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %v, want %v", got, want)
	}
}

func TestSearch_RequestShape(t *testing.T) {
	var gotUA, gotQ, gotHL, gotTBM string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQ = r.URL.Query().Get("q")
		gotHL = r.URL.Query().Get("hl")
		gotTBM = r.URL.Query().Get("tbm")
	}))
	defer srv.Close()

	newTestSearcher(srv.URL).Search(context.Background(), "Pav Bhaji & Co")

	if gotUA != testUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, testUserAgent)
	}
	if gotQ != "Pav Bhaji & Co recipe image" {
		t.Errorf("q = %q, want 'Pav Bhaji & Co recipe image'", gotQ)
	}
	if gotHL != "en" || gotTBM != "isch" {
		t.Errorf("hl = %q, tbm = %q; want en, isch", gotHL, gotTBM)
	}
}

func TestExtractJPGURLs_MatchRunsToClosingQuote(t *testing.T) {
	got := extractJPGURLs(`"https://a.example/x.jpg?w=1.jpg"`, MaxImages)
	if len(got) != 1 || got[0] != "https://a.example/x.jpg?w=1.jpg" {
		t.Errorf("extractJPGURLs = %v", got)
	}
}

func TestExtractJPGURLs_IgnoresJPEG(t *testing.T) {
	got := extractJPGURLs(`"https://a.example/x.jpeg"`, MaxImages)
	if len(got) != 0 {
		t.Errorf("extractJPGURLs = %v, want none", got)
	}
}

func TestExtractJPGURLs_StripsQuotes(t *testing.T) {
	got := extractJPGURLs(`x "https://a.example/x.jpg" y`, MaxImages)
	if len(got) != 1 || got[0] != "https://a.example/x.jpg" {
		t.Errorf("extractJPGURLs = %v, want [https://a.example/x.jpg]", got)
	}
}
