package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	sqlite3 "github.com/mattn/go-sqlite3"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
	}{
		{CodeValidation, http.StatusBadRequest, "validation failed", false},
		{CodeUnauthorized, http.StatusUnauthorized, "authentication required", false},
		{CodeNotFound, http.StatusNotFound, "resource not found", false},
		{CodeConflict, http.StatusConflict, "conflict detected", false},
		{CodeInternal, http.StatusInternalServerError, "internal server error", true},
		{CodeDependency, http.StatusServiceUnavailable, "dependency unavailable", true},
	}

	for _, tc := range tests {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.status {
			t.Fatalf("%s: expected status %d got %d", tc.code, tc.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tc.publicMsg {
			t.Fatalf("%s: expected message %q got %q", tc.code, tc.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tc.retryable {
			t.Fatalf("%s: expected retryable=%v", tc.code, tc.retryable)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeInternal, cause, "write receipt")

	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
	if As(err) == nil {
		t.Fatalf("expected typed error via As")
	}
	if err.Error() != "INTERNAL_ERROR: write receipt" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestDumpCollectsChainAndCode(t *testing.T) {
	err := Wrap(CodeConflict, stdErrors.New("duplicate email"), "create student")
	dump := Dump(err)

	if dump.Code != CodeConflict {
		t.Fatalf("expected conflict code, got %s", dump.Code)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected chain of 2, got %d", len(dump.Chain))
	}
}

func TestIsDuplicateKeySqlite(t *testing.T) {
	dup := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	if !IsDuplicateKey(dup) {
		t.Fatalf("expected unique violation to be detected")
	}
	if IsDuplicateKey(stdErrors.New("not a driver error")) {
		t.Fatalf("expected plain error to not match")
	}
}
