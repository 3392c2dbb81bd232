package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"amendtrack/internal/errs"
)

func TestParseAmendmentFilter(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/amendments?amendment_status=Open,Testing&priority=High&amendment_ids=3,7&qa_assigned=true&search_text=crash"+
			"&created_on_from=2026-01-01&modified_on_to=2026-02-01T12:00:00Z&sort_by=priority&sort_order=asc&skip=10&limit=25",
		nil)

	filter, err := parseAmendmentFilter(r)
	if err != nil {
		t.Fatalf("parseAmendmentFilter() error = %v", err)
	}

	if len(filter.Statuses) != 2 || filter.Statuses[0] != "Open" || filter.Statuses[1] != "Testing" {
		t.Fatalf("Statuses = %v", filter.Statuses)
	}
	if len(filter.Priorities) != 1 || filter.Priorities[0] != "High" {
		t.Fatalf("Priorities = %v", filter.Priorities)
	}
	if len(filter.IDs) != 2 || filter.IDs[0] != 3 || filter.IDs[1] != 7 {
		t.Fatalf("IDs = %v", filter.IDs)
	}
	if filter.QAAssigned == nil || !*filter.QAAssigned {
		t.Fatalf("QAAssigned = %v", filter.QAAssigned)
	}
	if filter.SearchText != "crash" {
		t.Fatalf("SearchText = %q", filter.SearchText)
	}
	if filter.CreatedOnFrom == nil || !filter.CreatedOnFrom.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("CreatedOnFrom = %v", filter.CreatedOnFrom)
	}
	if filter.ModifiedOnTo == nil || !filter.ModifiedOnTo.Equal(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("ModifiedOnTo = %v", filter.ModifiedOnTo)
	}
	if filter.SortBy != "priority" || filter.SortOrder != "asc" {
		t.Fatalf("sort = %s %s", filter.SortBy, filter.SortOrder)
	}
	if filter.Skip != 10 || filter.Limit != 25 {
		t.Fatalf("paging = %d %d", filter.Skip, filter.Limit)
	}
}

func TestParseAmendmentFilterDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/amendments", nil)

	filter, err := parseAmendmentFilter(r)
	if err != nil {
		t.Fatalf("parseAmendmentFilter() error = %v", err)
	}
	if filter.Statuses != nil || filter.IDs != nil {
		t.Fatalf("unexpected filters: %+v", filter)
	}
	if filter.QAAssigned != nil || filter.QACompleted != nil {
		t.Fatal("bool filters should be unset")
	}
	if filter.Skip != 0 || filter.Limit != 0 {
		t.Fatalf("paging = %d %d", filter.Skip, filter.Limit)
	}
}

func TestParseAmendmentFilterRejectsBadInput(t *testing.T) {
	cases := []string{
		"/api/amendments?amendment_ids=3,abc",
		"/api/amendments?created_on_from=yesterday",
		"/api/amendments?qa_completed=maybe",
		"/api/amendments?skip=-1",
		"/api/amendments?limit=-5",
		"/api/amendments?skip=ten",
	}
	for _, target := range cases {
		r := httptest.NewRequest("GET", target, nil)
		_, err := parseAmendmentFilter(r)
		if err == nil {
			t.Fatalf("parseAmendmentFilter(%s) error = nil", target)
		}
		if kind := errs.KindOf(err); kind != errs.KindInvalid {
			t.Fatalf("parseAmendmentFilter(%s) kind = %v, want KindInvalid", target, kind)
		}
	}
}

func TestSplitListTrimsAndDropsEmpty(t *testing.T) {
	got := splitList(" Open , ,Testing,")
	if len(got) != 2 || got[0] != "Open" || got[1] != "Testing" {
		t.Fatalf("splitList() = %v", got)
	}
	if splitList("") != nil {
		t.Fatal("splitList(empty) != nil")
	}
}
