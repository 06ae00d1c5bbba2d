package leave

import "testing"

func strPtr(s string) *string { return &s }

func TestClassifyLegacy(t *testing.T) {
	cases := []struct {
		name     string
		code     *string
		typeName string
		want     Category
	}{
		{"code CL", strPtr("CL"), "whatever", CategoryCasual},
		{"code SL lowercase", strPtr("sl"), "whatever", CategorySick},
		{"code EL padded", strPtr(" el "), "whatever", CategoryEarned},
		{"code wins over name", strPtr("SL"), "Casual Leave", CategorySick},
		{"unknown code falls back to name", strPtr("XX"), "Casual Leave", CategoryCasual},
		{"nil code casual name", nil, "Casual Leave", CategoryCasual},
		{"case-insensitive name", nil, "CASUAL LEAVE", CategoryCasual},
		{"sick name", nil, "Sick Leave", CategorySick},
		{"earned name", nil, "Earned Leave", CategoryEarned},
		{"vacation aliases earned", nil, "Vacation", CategoryEarned},
		{"substring match", nil, "Half-Day Casual", CategoryCasual},
		{"no match", nil, "Paternity Leave", CategoryUncategorized},
		{"empty name", nil, "", CategoryUncategorized},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyLegacy(c.code, c.typeName); got != c.want {
				t.Errorf("ClassifyLegacy(%v, %q) = %q, want %q", c.code, c.typeName, got, c.want)
			}
		})
	}
}
