package artifact

import "testing"

func TestIsArtifact(t *testing.T) {
	cases := []struct {
		category, item string
		amount, final  float64
		want           bool
	}{
		{"Hospital - ", "UNKNOWN", 0, 0, true},
		{"Hospitalization", "", 0, 0, true},
		{"hospital charges", "unknown", 0, 0, true},
		{"Hospital", "UNKNOWN", 100, 0, false},
		{"Hospital", "UNKNOWN", 0, 50, false},
		{"Pharmacy", "UNKNOWN", 0, 0, false},
		{"Hospital", "Room Rent", 0, 0, false},
	}
	for _, c := range cases {
		if got := IsArtifact(c.category, c.item, c.amount, c.final); got != c.want {
			t.Errorf("IsArtifact(%q, %q, %v, %v) = %t, want %t",
				c.category, c.item, c.amount, c.final, got, c.want)
		}
	}
}

func TestIsZeroAmountNoise(t *testing.T) {
	cases := []struct {
		item   string
		amount float64
		want   bool
	}{
		{"123456", 0, true},
		{"AB12CD34", 0, true},
		{"Batch AB12", 0, true},
		{"123456", 10, false},
		{"MRI Brain", 0, false},
	}
	for _, c := range cases {
		if got := IsZeroAmountNoise(c.item, c.amount); got != c.want {
			t.Errorf("IsZeroAmountNoise(%q, %v) = %t, want %t", c.item, c.amount, got, c.want)
		}
	}
}

func TestIsAdminCharge(t *testing.T) {
	if !IsAdminCharge("Registration Fee") {
		t.Error("registration fee should be an admin charge")
	}
	if !IsAdminCharge("SECURITY DEPOSIT") {
		t.Error("deposit should be an admin charge")
	}
	if IsAdminCharge("MRI Brain") {
		t.Error("MRI Brain should not be an admin charge")
	}
}
