package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/auth"
)

// companyIDFromRequest pulls the tenant out of the verified token. Every
// ledger route is company-scoped, so a token without company_id is useless.
func companyIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", auth.ErrCompanyNotFound
	}
	return companyID, nil
}

// monthYearFromQuery reads the month/year query pair, defaulting to the
// current calendar month when both are absent.
func monthYearFromQuery(r *http.Request) (month, year int, ok bool) {
	q := r.URL.Query()
	if q.Get("month") == "" && q.Get("year") == "" {
		now := time.Now()
		return int(now.Month()), now.Year(), true
	}

	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(q.Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	return month, year, true
}
