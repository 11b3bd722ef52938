package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("socket closed")
	err := Wrap(CodeExternal, cause, "scoring call failed")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if err.Code() != CodeExternal {
		t.Fatalf("expected code %s, got %s", CodeExternal, err.Code())
	}
	if !err.Retryable() {
		t.Fatal("external errors must be retryable")
	}
}

func TestAsThroughWrapping(t *testing.T) {
	typed := New(CodeStateConflict, "illegal repair transition")
	wrapped := fmt.Errorf("mutator: %w", typed)

	got := As(wrapped)
	if got == nil {
		t.Fatal("expected typed error through fmt wrapping")
	}
	if got.Code() != CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %s", got.Code())
	}
	if !IsCode(wrapped, CodeStateConflict) {
		t.Fatal("IsCode should match through wrapping")
	}
}

func TestMetadataFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal metadata, got status %d", meta.HTTPStatus)
	}
}

func TestMetadataStatuses(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:    http.StatusBadRequest,
		CodeNotFound:      http.StatusNotFound,
		CodeConflict:      http.StatusConflict,
		CodeStateConflict: http.StatusUnprocessableEntity,
		CodeExternal:      http.StatusBadGateway,
		CodeRateLimit:     http.StatusTooManyRequests,
	}
	for code, want := range cases {
		if got := MetadataFor(code).HTTPStatus; got != want {
			t.Fatalf("MetadataFor(%s).HTTPStatus = %d, want %d", code, got, want)
		}
	}
}
