package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// parseAmendmentFilter reassembles the flat listing query params into the
// structured filter. List params accept comma-separated values; dates accept
// RFC 3339 or plain YYYY-MM-DD.
func parseAmendmentFilter(r *http.Request) (ports.AmendmentFilter, error) {
	q := r.URL.Query()

	filter := ports.AmendmentFilter{
		Reference:           q.Get("amendment_reference"),
		Statuses:            splitList(q.Get("amendment_status")),
		DevelopmentStatuses: splitList(q.Get("development_status")),
		Priorities:          splitList(q.Get("priority")),
		Types:               splitList(q.Get("amendment_type")),
		Forces:              splitList(q.Get("force")),
		Applications:        splitList(q.Get("application")),
		AssignedTo:          splitList(q.Get("assigned_to")),
		ReportedBy:          splitList(q.Get("reported_by")),
		SearchText:          q.Get("search_text"),
		SortBy:              q.Get("sort_by"),
		SortOrder:           q.Get("sort_order"),
	}

	ids, err := parseIDList(q.Get("amendment_ids"))
	if err != nil {
		return ports.AmendmentFilter{}, err
	}
	filter.IDs = ids

	dates := []struct {
		param  string
		target **time.Time
	}{
		{"date_reported_from", &filter.DateReportedFrom},
		{"date_reported_to", &filter.DateReportedTo},
		{"created_on_from", &filter.CreatedOnFrom},
		{"created_on_to", &filter.CreatedOnTo},
		{"modified_on_from", &filter.ModifiedOnFrom},
		{"modified_on_to", &filter.ModifiedOnTo},
	}
	for _, d := range dates {
		t, err := parseDateParam(q, d.param)
		if err != nil {
			return ports.AmendmentFilter{}, err
		}
		*d.target = t
	}

	bools := []struct {
		param  string
		target **bool
	}{
		{"qa_completed", &filter.QACompleted},
		{"qa_assigned", &filter.QAAssigned},
		{"database_changes", &filter.DatabaseChanges},
		{"db_upgrade_changes", &filter.DBUpgradeChanges},
	}
	for _, b := range bools {
		v, err := parseBoolParam(q, b.param)
		if err != nil {
			return ports.AmendmentFilter{}, err
		}
		*b.target = v
	}

	skip, err := parseIntParam(q, "skip", 0)
	if err != nil {
		return ports.AmendmentFilter{}, err
	}
	if skip < 0 {
		return ports.AmendmentFilter{}, errs.E(errs.KindInvalid, "skip must be >= 0")
	}
	filter.Skip = skip

	limit, err := parseIntParam(q, "limit", 0)
	if err != nil {
		return ports.AmendmentFilter{}, err
	}
	if limit < 0 {
		return ports.AmendmentFilter{}, errs.E(errs.KindInvalid, "limit must be >= 0")
	}
	filter.Limit = limit

	return filter, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseIDList(value string) ([]uint64, error) {
	parts := splitList(value)
	if parts == nil {
		return nil, nil
	}

	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, errs.Ef(errs.KindInvalid, "invalid id %q", p)
		}
		out = append(out, id)
	}
	return out, nil
}

func parseDateParam(q url.Values, name string) (*time.Time, error) {
	value := q.Get(name)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, errs.Ef(errs.KindInvalid, "invalid date %q for %s", value, name)
}

func parseBoolParam(q url.Values, name string) (*bool, error) {
	value := q.Get(name)
	if value == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errs.Ef(errs.KindInvalid, "invalid boolean %q for %s", value, name)
	}
	return &b, nil
}

func parseIntParam(q url.Values, name string, fallback int) (int, error) {
	value := q.Get(name)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.Ef(errs.KindInvalid, "invalid integer %q for %s", value, name)
	}
	return n, nil
}
