package routing

import "testing"

func testAdvisor() *Advisor {
	return NewAdvisor([]Affinity{
		{Category: "Pothole", DepartmentID: "roads"},
		{Category: "Road Damage", DepartmentID: "roads"},
		{Category: "Water Leakage", DepartmentID: "water"},
		{Category: "Drainage Issues", DepartmentID: "drainage"},
		{Category: "Street Light Problem", DepartmentID: "electricity"},
		{Category: "Garbage on Open Spaces", DepartmentID: "sanitation"},
		{Category: "pothole", DepartmentID: "water"}, // duplicate, ignored
	})
}

func TestSuggest(t *testing.T) {
	a := testAdvisor()

	tests := []struct {
		category string
		expected string
		ok       bool
	}{
		{"Pothole", "roads", true},
		{"pothole", "roads", true},
		{"  POTHOLE  ", "roads", true},
		{"Water Leakage", "water", true},
		{"Street Light Problem", "electricity", true},
		{"Broken Bench", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, test := range tests {
		dept, ok := a.Suggest(test.category)
		if dept != test.expected || ok != test.ok {
			t.Errorf("Suggest(%q) = (%q, %v), want (%q, %v)", test.category, dept, ok, test.expected, test.ok)
		}
	}
}

func TestFirstMappingWins(t *testing.T) {
	if dept, _ := testAdvisor().Suggest("Pothole"); dept != "roads" {
		t.Errorf("duplicate category should keep the first mapping, got %q", dept)
	}
}
