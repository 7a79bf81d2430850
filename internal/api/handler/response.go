package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/advertising"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: failed to encode response")
	}
}

// writeServiceError maps a use case error to its API code. Unknown errors
// become 500s.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := apiErrors.ErrInternalServer

	var (
		reportErr *reporting.ReportError
		targetErr *targeting.TargetError
		ppcErr    *advertising.PPCError
	)
	switch {
	case errors.As(err, &reportErr):
		code = reportErr.Code
	case errors.As(err, &targetErr):
		code = targetErr.Code
	case errors.As(err, &ppcErr):
		code = ppcErr.Code
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("status_code", apiErrors.StatusFor(code))
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("api: request failed")
	} else {
		logger.Warn("api: request rejected")
	}

	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

// queryInt reads an optional integer query parameter; missing yields 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// queryStrings splits a comma separated parameter, which may also repeat.
// Blank items are skipped.
func queryStrings(r *http.Request, name string) []string {
	var values []string
	for _, raw := range r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				values = append(values, item)
			}
		}
	}
	return values
}

// queryInts is queryStrings for integer lists such as years=2023,2024.
func queryInts(r *http.Request, name string) ([]int, error) {
	items := queryStrings(r, name)
	if len(items) == 0 {
		return nil, nil
	}

	values := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func invalidParam(w http.ResponseWriter, name string) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" must be an integer", map[string]string{"param": name})
}

func invalidListParam(w http.ResponseWriter, name string) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" must be a comma separated list of integers", map[string]string{"param": name})
}
