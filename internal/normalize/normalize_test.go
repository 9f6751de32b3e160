package normalize

import "testing"

func TestNormalizeStripsSerialAndDoctor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1. CONSULTATION - FIRST VISIT | Dr. A. Kumar", "consultation first visit"},
		{"2) MRI BRAIN | Dr. X", "mri brain"},
		{"a. X-RAY CHEST PA VIEW", "x ray chest pa view"},
		{"CONSULTATION | Prof. B. Rao MBBS MD", "consultation"},
		{"Room Rent : Deluxe", "room rent deluxe"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeStripsCodesDatesLots(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PARACETAMOL 500mg HSN3004X901", "paracetamol 500mg"},
		{"INJ MONOCEF 1g Batch: AB1234 Exp 12/2026", "inj monocef 1g"},
		{"DRESSING 12/03/2024", "dressing"},
		{"SYRINGE 10ml x 2", "syringe 10ml"},
		{"TAB ECOSPRIN 75mg 10's", "tab ecosprin 75mg"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMedicalCore(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"nicorandil 5mg tablet", "nicorandil 5mg", true},
		{"tab ecosprin 75mg", "tab ecosprin 75mg", true},
		{"consultation first visit", "", false},
		{"5mg", "", false},
	}
	for _, c := range cases {
		got, ok := MedicalCore(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("MedicalCore(%q) = (%q, %t), want (%q, %t)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestForms(t *testing.T) {
	forms := Forms("NICORANDIL 5 mg TAB | Dr. Mehta")
	if len(forms) != 2 {
		t.Fatalf("expected normalized + core, got %v", forms)
	}
	if forms[0] != "nicorandil 5mg tab" || forms[1] != "nicorandil 5mg" {
		t.Errorf("unexpected forms: %v", forms)
	}

	if forms := Forms(""); forms != nil {
		t.Errorf("empty input should yield no forms, got %v", forms)
	}
}

func TestKeys(t *testing.T) {
	if CollapseKey("  Apollo   HOSPITAL ") != "apollo hospital" {
		t.Error("CollapseKey should lowercase and collapse whitespace")
	}
	if CompactKey("Hospital - ") != "hospital" {
		t.Error("CompactKey should strip separators entirely")
	}
}

func TestPatternPredicates(t *testing.T) {
	if !IsPureNumber("12 345.00") {
		t.Error("expected pure number")
	}
	if IsPureNumber("mri brain") || IsPureNumber("") {
		t.Error("unexpected pure number")
	}
	if !LooksLikeCode("ab12cd34") {
		t.Error("expected code")
	}
	if LooksLikeCode("mri") || LooksLikeCode("paracetamol") {
		t.Error("unexpected code")
	}
	if !LooksLikeLotBatch("batch ab12") {
		t.Error("expected lot/batch remnant")
	}
	if LooksLikeLotBatch("expensive procedure with long name") {
		t.Error("unexpected lot/batch remnant")
	}
}
