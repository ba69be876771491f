package types

import "testing"

func TestCanTransitionLeadStatus(t *testing.T) {
	cases := []struct {
		from LeadStatus
		to   LeadStatus
		want bool
	}{
		{LeadStatusNew, LeadStatusContacted, true},
		{LeadStatusNew, LeadStatusQualified, true},
		{LeadStatusNew, LeadStatusLost, true},
		{LeadStatusNew, LeadStatusConverted, false},
		{LeadStatusContacted, LeadStatusQualified, true},
		{LeadStatusContacted, LeadStatusLost, true},
		{LeadStatusContacted, LeadStatusNew, false},
		{LeadStatusQualified, LeadStatusConverted, true},
		{LeadStatusQualified, LeadStatusLost, true},
		{LeadStatusQualified, LeadStatusContacted, false},
		{LeadStatusConverted, LeadStatusLost, false},
		{LeadStatusLost, LeadStatusNew, false},
		{LeadStatusNew, LeadStatusNew, false},
	}
	for _, tc := range cases {
		if got := CanTransitionLeadStatus(tc.from, tc.to); got != tc.want {
			t.Fatalf("transition %s -> %s: want=%v got=%v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestLeadIsOpen(t *testing.T) {
	cases := []struct {
		status LeadStatus
		want   bool
	}{
		{LeadStatusNew, true},
		{LeadStatusContacted, true},
		{LeadStatusQualified, true},
		{LeadStatusConverted, false},
		{LeadStatusLost, false},
	}
	for _, tc := range cases {
		l := Lead{Status: tc.status}
		if got := l.IsOpen(); got != tc.want {
			t.Fatalf("status %s: want=%v got=%v", tc.status, tc.want, got)
		}
	}
}

func TestLeadDisplayName(t *testing.T) {
	l := Lead{FirstName: "Mara", LastName: "Voss", Company: "Voss Logistics"}
	if got := l.DisplayName(); got != "Voss Logistics" {
		t.Fatalf("display name: want=%q got=%q", "Voss Logistics", got)
	}
	l.Company = ""
	if got := l.DisplayName(); got != "Mara Voss" {
		t.Fatalf("display name: want=%q got=%q", "Mara Voss", got)
	}
}
