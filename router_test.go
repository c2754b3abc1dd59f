package forge

import "testing"

func okHandler(r *RequestView) (Response, error) {
	return NewResponse(StatusOK).Text("ok"), nil
}

func TestRouterExactMatch(t *testing.T) {
	r := NewRouter()
	r.Get("/ping", okHandler)

	h, params, ok := r.Lookup(MethodGET, "/ping")
	if !ok || h == nil {
		t.Fatal("expected a match for /ping")
	}
	if len(params) != 0 {
		t.Errorf("expected no params, got %v", params)
	}
}

func TestRouterMissingRoute(t *testing.T) {
	r := NewRouter()
	r.Get("/ping", okHandler)

	if _, _, ok := r.Lookup(MethodPOST, "/ping"); ok {
		t.Error("expected no match for an unregistered method")
	}
	if _, _, ok := r.Lookup(MethodGET, "/nope"); ok {
		t.Error("expected no match for an unregistered path")
	}
}

func TestRouterParamExtraction(t *testing.T) {
	r := NewRouter()
	r.Get("/store/:store_id/customer/:customer_id", okHandler)

	_, params, ok := r.Lookup(MethodGET, "/store/99/customer/500")
	if !ok {
		t.Fatal("expected a match")
	}
	want := []Param{{Name: "store_id", Value: "99"}, {Name: "customer_id", Value: "500"}}
	if len(params) != len(want) {
		t.Fatalf("got %v, want %v", params, want)
	}
	for i := range want {
		if params[i] != want[i] {
			t.Fatalf("got %v, want %v", params, want)
		}
	}
}

func TestRouterLiteralPrecedence(t *testing.T) {
	r := NewRouter()
	r.Get("/users/all", okHandler)
	r.Get("/users/:id", okHandler)

	_, params, ok := r.Lookup(MethodGET, "/users/all")
	if !ok || len(params) != 0 {
		t.Errorf("expected literal match with no params, got ok=%v params=%v", ok, params)
	}

	_, params, ok = r.Lookup(MethodGET, "/users/123")
	if !ok || len(params) != 1 || params[0].Value != "123" {
		t.Errorf("expected param match id=123, got ok=%v params=%v", ok, params)
	}
}

func TestRouterDuplicateRegistrationIsFatal(t *testing.T) {
	r := NewRouter()
	if err := r.Register(MethodGET, "/dup", okHandler); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	err := r.Register(MethodGET, "/dup", okHandler)
	if err == nil {
		t.Fatal("expected a DuplicateRouteError on the second registration")
	}
	if _, ok := err.(*DuplicateRouteError); !ok {
		t.Errorf("expected *DuplicateRouteError, got %T", err)
	}
}

func TestRouterMustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate registration")
		}
	}()
	r := NewRouter()
	r.Get("/dup", okHandler)
	r.Get("/dup", okHandler)
}

func TestRouterRegisterAll(t *testing.T) {
	r := NewRouter()
	r.RegisterAll(map[Method]map[string]Handler{
		MethodGET:  {"/a": okHandler, "/b": okHandler},
		MethodPOST: {"/c": okHandler},
	})

	for _, tc := range []struct {
		method Method
		path   string
	}{
		{MethodGET, "/a"}, {MethodGET, "/b"}, {MethodPOST, "/c"},
	} {
		if _, _, ok := r.Lookup(tc.method, tc.path); !ok {
			t.Errorf("expected route %v %s to be registered", tc.method, tc.path)
		}
	}
}
