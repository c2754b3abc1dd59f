package forge

import "testing"

func TestParseRequestViewSimple(t *testing.T) {
	raw := "GET /ping HTTP/1.1\r\nHost: x\r\n\r\n"
	v, err := ParseRequestView([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Method != MethodGET {
		t.Errorf("expected GET, got %v", v.Method)
	}
	if v.Path != "/ping" {
		t.Errorf("expected /ping, got %q", v.Path)
	}
	if v.Version != "HTTP/1.1" {
		t.Errorf("expected HTTP/1.1, got %q", v.Version)
	}
	host, ok := v.Headers.Get("host")
	if !ok || host != "x" {
		t.Errorf("expected host=x, got %q, %v", host, ok)
	}
}

func TestParseRequestViewMissingVersionFails(t *testing.T) {
	_, err := ParseRequestView([]byte("GET /path\r\n\r\n"))
	if err == nil {
		t.Fatal("expected error for malformed request line")
	}
}

func TestParseRequestViewHeaderNormalization(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nCONTENT-TYPE: application/json\r\nX-Custom:   hello  \r\n\r\n"
	v, err := ParseRequestView([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ct, ok := v.Headers.Get("content-type")
	if !ok || ct != "application/json" {
		t.Errorf("expected content-type=application/json, got %q, %v", ct, ok)
	}
	xc, ok := v.Headers.Get("x-custom")
	if !ok || xc != "hello" {
		t.Errorf("expected x-custom=hello, got %q, %v", xc, ok)
	}
	for key := range v.Headers {
		for _, c := range key {
			if c >= 'A' && c <= 'Z' {
				t.Errorf("header key %q retains an uppercase byte", key)
			}
		}
	}
}

func TestParseRequestViewBadHeaderNoColon(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nbroken-header-no-colon\r\n\r\n"
	_, err := ParseRequestView([]byte(raw))
	if err == nil {
		t.Fatal("expected error for header missing a colon")
	}
}

func TestParseRequestViewUnknownMethod(t *testing.T) {
	_, err := ParseRequestView([]byte("FOO / HTTP/1.1\r\n\r\n"))
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestParamLookup(t *testing.T) {
	v := RequestView{Params: []Param{{Name: "id", Value: "42"}}}
	val, ok := v.Param("id")
	if !ok || val != "42" {
		t.Errorf("expected id=42, got %q, %v", val, ok)
	}
	if _, ok := v.Param("missing"); ok {
		t.Error("expected no match for missing param")
	}
}
