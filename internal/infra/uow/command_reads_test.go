//go:build unit

package uow_test

import (
	"testing"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/uow"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestQualificationFilter(t *testing.T) {
	now := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	voucherID := uuid.New()
	productID := uuid.New()
	minSpend := 500.0
	days := 30
	orders := 2
	regDays := 90
	role := user.RoleCustomer
	roleName := "customer"
	since := now.AddDate(0, 0, -30)
	registeredBefore := now.AddDate(0, 0, -90)

	testCases := []struct {
		name     string
		criteria *voucher.Criteria
		want     query.QualificationFilter
	}{
		{
			name: "nil criteria only excludes existing grants",
			want: query.QualificationFilter{VoucherID: voucherID},
		},
		{
			name:     "lifetime spend without a window",
			criteria: &voucher.Criteria{MinSpend: &minSpend},
			want:     query.QualificationFilter{VoucherID: voucherID, MinSpend: &minSpend},
		},
		{
			name: "every predicate resolved against now",
			criteria: &voucher.Criteria{
				MinSpend:         &minSpend,
				TimePeriodDays:   &days,
				MinOrders:        &orders,
				ProductIDs:       []uuid.UUID{productID},
				RegistrationDays: &regDays,
				UserType:         &role,
				SendEmail:        true,
			},
			want: query.QualificationFilter{
				VoucherID:        voucherID,
				MinSpend:         &minSpend,
				SpendSince:       &since,
				MinOrders:        &orders,
				ProductIDs:       []uuid.UUID{productID},
				RegisteredBefore: &registeredBefore,
				Role:             &roleName,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := uow.QualificationFilter(voucherID, tc.criteria, now)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("QualificationFilter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
