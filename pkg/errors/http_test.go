package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "item-service/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")

	if err.Error() != "404: item not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected code 404, got %d", httpErr.Code)
	}
}
