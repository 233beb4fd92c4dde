package turnstile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDisabledVerifierAcceptsEverything(t *testing.T) {
	v := New("")
	if v.Enabled() {
		t.Fatal("empty secret must disable the verifier")
	}
	ok, err := v.Verify(context.Background(), "anything", "1.2.3.4")
	if err != nil || !ok {
		t.Fatalf("disabled verifier: ok=%v err=%v", ok, err)
	}
}

func TestEmptyTokenFailsWithoutNetworkCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("empty token must not reach the challenge service")
	}))
	defer srv.Close()

	v := New("secret")
	v.SetEndpoint(srv.URL)
	ok, err := v.Verify(context.Background(), "   ", "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("empty token must fail verification")
	}
}

func TestVerifyPostsFormAndReadsVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("secret") != "secret" || r.PostForm.Get("response") != "tok" {
			t.Errorf("form = %v", r.PostForm)
		}
		if r.PostForm.Get("remoteip") != "1.2.3.4" {
			t.Errorf("remoteip = %q", r.PostForm.Get("remoteip"))
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v := New("secret")
	v.SetEndpoint(srv.URL)
	ok, err := v.Verify(context.Background(), "tok", "1.2.3.4")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestVerifyUnknownIPOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if _, set := r.PostForm["remoteip"]; set {
			t.Error("unknown remote ip must be omitted from the form")
		}
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	v := New("secret")
	v.SetEndpoint(srv.URL)
	ok, err := v.Verify(context.Background(), "tok", "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("service said no, verifier said yes")
	}
}

func TestVerifyGarbageResponseIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	v := New("secret")
	v.SetEndpoint(srv.URL)
	if _, err := v.Verify(context.Background(), "tok", ""); err == nil {
		t.Fatal("undecodable response must surface as an error")
	}
}
