package pricing

import (
	"testing"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
)

func fptr(f float64) *float64 { return &f }

func TestAllowedAmount(t *testing.T) {
	unit := entity.TieUpItem{ItemName: "Syringe", Rate: 25, Type: constants.TieUpTypeUnit}
	service := entity.TieUpItem{ItemName: "MRI Brain", Rate: 8500, Type: constants.TieUpTypeService}
	bundle := entity.TieUpItem{ItemName: "Delivery Package", Rate: 45000, Type: constants.TieUpTypeBundle}

	cases := []struct {
		name  string
		item  entity.ItemRow
		tieup entity.TieUpItem
		want  float64
	}{
		{"unit with qty", entity.ItemRow{Quantity: fptr(4)}, unit, 100},
		{"unit default qty", entity.ItemRow{}, unit, 25},
		{"service ignores qty", entity.ItemRow{Quantity: fptr(3)}, service, 8500},
		{"bundle flat", entity.ItemRow{Quantity: fptr(2)}, bundle, 45000},
	}
	for _, c := range cases {
		if got := AllowedAmount(c.item, c.tieup); got != c.want {
			t.Errorf("%s: allowed = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifyGreenRedBoundary(t *testing.T) {
	tieup := entity.TieUpItem{ItemName: "Consultation", Rate: 1500, Type: constants.TieUpTypeService}

	green := Classify(entity.ItemRow{ItemName: "Consultation", Amount: 1500}, tieup)
	if green.Status != constants.ItemStatusGreen || green.AllowedAmount != 1500 || green.ExtraAmount != 0 {
		t.Errorf("equal amount must be GREEN with zero extra: %+v", green)
	}

	red := Classify(entity.ItemRow{ItemName: "Consultation", Amount: 1500.01}, tieup)
	if red.Status != constants.ItemStatusRed {
		t.Errorf("one paisa over must be RED: %+v", red)
	}
	if diff := red.ExtraAmount - 0.01; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("extra = %v, want 0.01", red.ExtraAmount)
	}

	under := Classify(entity.ItemRow{ItemName: "Consultation", Amount: 900}, tieup)
	if under.Status != constants.ItemStatusGreen || under.ExtraAmount != 0 {
		t.Errorf("under-billed must be GREEN: %+v", under)
	}
}

func TestClassifyRedDelta(t *testing.T) {
	tieup := entity.TieUpItem{ItemName: "MRI Brain", Rate: 8500, Type: constants.TieUpTypeService}
	res := Classify(entity.ItemRow{ItemName: "MRI BRAIN", Amount: 10770}, tieup)
	if res.Status != constants.ItemStatusRed || res.AllowedAmount != 8500 || res.ExtraAmount != 2270 {
		t.Errorf("unexpected RED result: %+v", res)
	}
}

func TestUnmatchedCarriesReason(t *testing.T) {
	res := Unmatched(entity.ItemRow{ItemName: "Registration Fee", Amount: 200},
		constants.ItemStatusAllowedNotComparable, constants.FailureAdminCharge)
	if res.Status != constants.ItemStatusAllowedNotComparable {
		t.Errorf("status = %v", res.Status)
	}
	if res.AllowedAmount != 0 || res.ExtraAmount != 0 {
		t.Error("unmatched lines carry no allowed/extra amounts")
	}
	if res.FailureReason == nil || *res.FailureReason != constants.FailureAdminCharge {
		t.Errorf("failure reason missing: %+v", res)
	}
}
