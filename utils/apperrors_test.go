package utils

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundError("missing"), http.StatusNotFound},
		{ForbiddenError("denied"), http.StatusForbidden},
		{ConflictError("exists"), http.StatusConflict},
		{InvalidRoleError("bad role"), http.StatusBadRequest},
		{ValidationError("bad input"), http.StatusBadRequest},
		{errors.New("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	err := pkgerrors.Wrap(NotFoundError("patient not found"), "loading detail")
	if KindOf(err) != KindNotFound {
		t.Fatalf("wrapped kind = %v", KindOf(err))
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	err := InvalidRoleError("role %q is not assigned", "admin")
	if err.Error() != `role "admin" is not assigned` {
		t.Fatalf("message = %q", err.Error())
	}
}
