package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"healthmonitor/internal/domain"
)

// ParseAlert decodes an alert-shaped payload without rejecting it. Missing or
// wrong-typed fields fall back to defaults: type "custom", severity "low",
// empty message and the supplied now. The returned errors describe what was
// defaulted and are informational only.
func ParseAlert(body []byte, now time.Time) (domain.Alert, []error) {
	a := domain.Alert{
		Type:      domain.AlertTypeCustom,
		Severity:  domain.SeverityLow,
		Timestamp: now.UTC(),
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return a, []error{ErrMalformedAlert}
	}

	var errs []error
	if v, ok, err := stringField(fields, "type"); err != nil {
		errs = append(errs, err)
	} else if ok && v != "" {
		a.Type = v
	}
	if v, _, err := stringField(fields, "message"); err != nil {
		errs = append(errs, err)
	} else {
		a.Message = v
	}
	if v, ok, err := stringField(fields, "severity"); err != nil {
		errs = append(errs, err)
	} else if ok && v != "" {
		a.Severity = domain.Severity(v)
	}
	if raw, ok := fields["timestamp"]; ok && !isNull(raw) {
		ts, err := parseTimestamp(raw)
		if err != nil {
			errs = append(errs, &FieldError{Field: "timestamp", Err: err})
		} else {
			a.Timestamp = ts
		}
	}
	return a, errs
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool, error) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return "", false, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false, &FieldError{Field: name, Err: err}
	}
	return v, true, nil
}

var errUnsupportedTimestamp = errors.New("expected RFC 3339 string or epoch milliseconds")

// parseTimestamp accepts RFC 3339 strings and epoch milliseconds, the two
// forms dashboard clients send.
func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return inRange(ts.UTC())
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return fromMillis(ms)
		}
		return time.Time{}, errUnsupportedTimestamp
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil || math.IsNaN(ms) ||
		ms < math.MinInt64 || ms >= math.MaxInt64 {
		return time.Time{}, errUnsupportedTimestamp
	}
	return fromMillis(int64(ms))
}

func fromMillis(ms int64) (time.Time, error) {
	return inRange(time.UnixMilli(ms).UTC())
}

// inRange rejects instants outside years 0 through 9999, which
// encoding/json refuses to marshal.
func inRange(ts time.Time) (time.Time, error) {
	if ts.Year() < 0 || ts.Year() > 9999 {
		return time.Time{}, errUnsupportedTimestamp
	}
	return ts, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
