package entities

import (
	"math"
	"testing"
)

func TestComputePaymentStatus(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		paid  float64
		want  PaymentStatus
	}{
		{name: "nothing paid", total: 150, paid: 0, want: PaymentStatusUnpaid},
		{name: "negative paid", total: 150, paid: -10, want: PaymentStatusUnpaid},
		{name: "partially paid", total: 150, paid: 60, want: PaymentStatusPartial},
		{name: "exactly paid", total: 150, paid: 150, want: PaymentStatusPaid},
		{name: "overpaid", total: 150, paid: 200, want: PaymentStatusPaid},
		{name: "zero cost zero paid", total: 0, paid: 0, want: PaymentStatusUnpaid},
		{name: "zero cost some paid", total: 0, paid: 10, want: PaymentStatusPartial},
		{name: "nan total treated as zero", total: math.NaN(), paid: 10, want: PaymentStatusPartial},
		{name: "inf paid treated as zero", total: 100, paid: math.Inf(1), want: PaymentStatusUnpaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputePaymentStatus(tc.total, tc.paid); got != tc.want {
				t.Fatalf("ComputePaymentStatus(%v, %v) = %s, want %s", tc.total, tc.paid, got, tc.want)
			}
		})
	}
}

func TestComputePaymentStatusProperties(t *testing.T) {
	totals := []float64{0, 0.01, 1, 99.99, 150, 10000}
	paids := []float64{-50, 0, 0.01, 60, 150, 150.01, 99999}

	for _, total := range totals {
		for _, paid := range paids {
			status := ComputePaymentStatus(total, paid)
			switch status {
			case PaymentStatusPaid:
				if !(paid >= total && total > 0) {
					t.Fatalf("paid status violates invariant: total=%v paid=%v", total, paid)
				}
			case PaymentStatusUnpaid:
				if paid > 0 {
					t.Fatalf("unpaid status violates invariant: total=%v paid=%v", total, paid)
				}
			case PaymentStatusPartial:
				if paid <= 0 || (paid >= total && total > 0) {
					t.Fatalf("partial status violates invariant: total=%v paid=%v", total, paid)
				}
			default:
				t.Fatalf("unknown status %q", status)
			}
		}
	}
}
