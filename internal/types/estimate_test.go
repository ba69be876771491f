package types

import (
	"testing"
	"time"
)

func TestCanTransitionEstimateStatus(t *testing.T) {
	cases := []struct {
		from EstimateStatus
		to   EstimateStatus
		want bool
	}{
		{EstimateStatusDraft, EstimateStatusSent, true},
		{EstimateStatusDraft, EstimateStatusAccepted, false},
		{EstimateStatusSent, EstimateStatusAccepted, true},
		{EstimateStatusSent, EstimateStatusRejected, true},
		{EstimateStatusSent, EstimateStatusExpired, true},
		{EstimateStatusSent, EstimateStatusDraft, false},
		{EstimateStatusAccepted, EstimateStatusRejected, false},
		{EstimateStatusRejected, EstimateStatusSent, false},
		{EstimateStatusExpired, EstimateStatusSent, false},
		{EstimateStatusDraft, EstimateStatusDraft, false},
	}
	for _, tc := range cases {
		if got := CanTransitionEstimateStatus(tc.from, tc.to); got != tc.want {
			t.Fatalf("transition %s -> %s: want=%v got=%v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestEstimateTotals(t *testing.T) {
	e := Estimate{
		Items: []LineItem{
			{Description: "Audit", Quantity: dec("4"), UnitPrice: dec("250")},
		},
		TaxRate: dec("0.07"),
	}
	if got := e.Subtotal(); !got.Equal(dec("1000")) {
		t.Fatalf("subtotal: want=1000 got=%s", got)
	}
	if got := e.TaxAmount(); !got.Equal(dec("70")) {
		t.Fatalf("tax: want=70 got=%s", got)
	}
	if got := e.Total(); !got.Equal(dec("1070")) {
		t.Fatalf("total: want=1070 got=%s", got)
	}
}

func TestEstimateIsExpired(t *testing.T) {
	validUntil := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	after := validUntil.AddDate(0, 0, 1)
	before := validUntil.AddDate(0, 0, -1)

	cases := []struct {
		name     string
		estimate Estimate
		now      time.Time
		want     bool
	}{
		{"sent past validity", Estimate{Status: EstimateStatusSent, ValidUntil: validUntil}, after, true},
		{"sent within validity", Estimate{Status: EstimateStatusSent, ValidUntil: validUntil}, before, false},
		{"marked expired", Estimate{Status: EstimateStatusExpired, ValidUntil: validUntil}, before, true},
		{"draft past validity", Estimate{Status: EstimateStatusDraft, ValidUntil: validUntil}, after, false},
		{"accepted past validity", Estimate{Status: EstimateStatusAccepted, ValidUntil: validUntil}, after, false},
	}
	for _, tc := range cases {
		if got := tc.estimate.IsExpired(tc.now); got != tc.want {
			t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
	}
}
