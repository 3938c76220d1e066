package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
)

// queryParam returns the first non-empty value among names, so both
// departmentId and department_id style parameters are accepted
func queryParam(r *http.Request, names ...string) string {
	q := r.URL.Query()
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func optionalQueryParam(r *http.Request, names ...string) *string {
	if v := queryParam(r, names...); v != "" {
		return &v
	}
	return nil
}

// intQueryParam returns 0 for missing or malformed values so DTO defaults apply
func intQueryParam(r *http.Request, names ...string) int {
	n, err := strconv.Atoi(queryParam(r, names...))
	if err != nil {
		return 0
	}
	return n
}

func caller(r *http.Request) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return identity, nil
}
