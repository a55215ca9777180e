package apierr_test

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/bodrovis/boxapi/apierr"
)

func TestHeader_CaseInsensitive(t *testing.T) {
	h := apierr.NewHeader(map[string][]string{"FOO": {"bAr"}})

	for _, k := range []string{"foo", "fOo", "FOO"} {
		if !h.Has(k) {
			t.Fatalf("Has(%q)=false, want true", k)
		}
		if got := h.Get(k); got != "bAr" {
			t.Fatalf("Get(%q)=%q, want %q", k, got, "bAr")
		}
		if got := h.Values(k); len(got) != 1 || got[0] != "bAr" {
			t.Fatalf("Values(%q)=%v, want [bAr]", k, got)
		}
	}
}

func TestHeader_ZeroValue(t *testing.T) {
	var h apierr.Header
	if h.Has("x") || h.Get("x") != "" || h.Values("x") != nil || h.Len() != 0 {
		t.Fatalf("zero Header should be empty")
	}
	if _, ok := h.Lookup("x"); ok {
		t.Fatalf("Lookup on zero Header reported present")
	}
	h.Del("x") // must not panic
}

func TestHeader_MultiValued(t *testing.T) {
	var h apierr.Header
	h.Add("Set-Cookie", "a=1")
	h.Add("set-cookie", "b=2")

	want := []string{"a=1", "b=2"}
	if got := h.Values("SET-COOKIE"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values=%v want %v", got, want)
	}
	if h.Len() != 1 {
		t.Fatalf("Len=%d want 1", h.Len())
	}
	if got := h.Names(); !reflect.DeepEqual(got, []string{"Set-Cookie"}) {
		t.Fatalf("Names=%v want first spelling", got)
	}
}

func TestHeader_SetAndDel(t *testing.T) {
	var h apierr.Header
	h.Add("A", "1")
	h.Set("a", "2", "3")
	if got := h.Values("A"); !reflect.DeepEqual(got, []string{"2", "3"}) {
		t.Fatalf("Values=%v", got)
	}
	h.Del("A")
	if h.Has("a") {
		t.Fatalf("Del did not remove key")
	}
}

func TestHeader_ValuesIsACopy(t *testing.T) {
	var h apierr.Header
	h.Add("K", "v")
	vv := h.Values("k")
	vv[0] = "mutated"
	if h.Get("k") != "v" {
		t.Fatalf("Values leaked internal slice")
	}
}

func TestHeader_Names_Sorted(t *testing.T) {
	var h apierr.Header
	h.Add("zeta", "1")
	h.Add("Alpha", "1")
	h.Add("beta", "1")
	want := []string{"Alpha", "beta", "zeta"}
	if got := h.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names=%v want %v", got, want)
	}
}

func TestHeader_HTTPRoundTrip(t *testing.T) {
	src := http.Header{}
	src.Add("Box-Request-Id", "11111")
	src.Add("X-Multi", "a")
	src.Add("X-Multi", "b")

	h := apierr.HeaderFromHTTP(src)
	if h.Get("BOX-REQUEST-ID") != "11111" {
		t.Fatalf("Get=%q", h.Get("BOX-REQUEST-ID"))
	}
	if got := h.HTTP(); !reflect.DeepEqual(got, src) {
		t.Fatalf("HTTP()=%v want %v", got, src)
	}
}

func TestHeader_CloneIsIndependent(t *testing.T) {
	var h apierr.Header
	h.Add("K", "v")
	c := h.Clone()
	h.Add("K", "w")
	if got := c.Values("k"); len(got) != 1 {
		t.Fatalf("clone shares storage: %v", got)
	}
}
