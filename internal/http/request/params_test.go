package request

import (
	"net/http"
	"testing"
)

func TestQueryIntParam(t *testing.T) {
	r, _ := http.NewRequest("GET", "/?page=3&bad=abc&neg=-2", nil)

	if v := QueryIntParam(r, "page", 1); v != 3 {
		t.Errorf("Expected 3, got %d", v)
	}
	if v := QueryIntParam(r, "missing", 7); v != 7 {
		t.Errorf("Expected default 7, got %d", v)
	}
	if v := QueryIntParam(r, "bad", 7); v != 7 {
		t.Errorf("Expected default for unparseable value, got %d", v)
	}
	if v := QueryIntParam(r, "neg", 7); v != 7 {
		t.Errorf("Expected default for negative value, got %d", v)
	}
}

func TestQueryStringParam(t *testing.T) {
	r, _ := http.NewRequest("GET", "/?q=dune", nil)

	if v := QueryStringParam(r, "q", ""); v != "dune" {
		t.Errorf("Expected dune, got %q", v)
	}
	if v := QueryStringParam(r, "missing", "fallback"); v != "fallback" {
		t.Errorf("Expected fallback, got %q", v)
	}
}

func TestFindClientIP(t *testing.T) {
	r, _ := http.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:51234"
	if ip := FindClientIP(r); ip != "192.0.2.10" {
		t.Errorf("Expected remote addr ip, got %q", ip)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.5, 192.0.2.10")
	if ip := FindClientIP(r); ip != "203.0.113.5" {
		t.Errorf("Expected first forwarded ip, got %q", ip)
	}

	r.Header.Set("X-Forwarded-For", "not-an-ip")
	if ip := FindClientIP(r); ip != "192.0.2.10" {
		t.Errorf("Expected fallback past an invalid forwarded value, got %q", ip)
	}
}
