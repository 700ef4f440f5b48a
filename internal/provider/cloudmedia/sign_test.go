package cloudmedia

import (
	"net/url"
	"testing"
)

func TestSignParams(t *testing.T) {
	params := url.Values{}
	params.Set("timestamp", "1700000000")
	params.Set("folder", "reelvault-uploads")

	got := signParams(params, "shhh")
	want := "58838183eb1c8e085f15af19cce70a2f03107ba6"
	if got != want {
		t.Errorf("expected signature %q, got %q", want, got)
	}
}

func TestSignParamsSortsKeys(t *testing.T) {
	params := url.Values{}
	params.Set("timestamp", "1700000000")
	params.Set("public_id", "users/ext_1/abc")
	params.Set("context", "caption=Sunset|owner=ext_1")

	got := signParams(params, "shhh")
	want := "6658e68c81cdac892fe50816d340c6144c489f46"
	if got != want {
		t.Errorf("expected signature %q, got %q", want, got)
	}
}

func TestSignParamsExcludesNonSignedFields(t *testing.T) {
	params := url.Values{}
	params.Set("timestamp", "1700000000")
	params.Set("folder", "reelvault-uploads")

	base := signParams(params, "shhh")

	params.Set("file", "payload-bytes")
	params.Set("api_key", "key123")
	params.Set("signature", "bogus")
	params.Set("eager", "")

	if got := signParams(params, "shhh"); got != base {
		t.Errorf("expected excluded fields to leave the signature unchanged, got %q vs %q", got, base)
	}
}

func TestSignParamsSecretChangesDigest(t *testing.T) {
	params := url.Values{}
	params.Set("timestamp", "1700000000")

	if signParams(params, "one") == signParams(params, "two") {
		t.Error("expected different secrets to produce different signatures")
	}
}
