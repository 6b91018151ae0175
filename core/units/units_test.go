package units

import (
	"testing"
)

func TestByteUnitMultipliers(t *testing.T) {
	tests := []struct {
		unit ByteUnit
		want string
	}{
		{Byte, "1"},
		{Kilobyte, "1000"},
		{Megabyte, "1000000"},
		{Gigabyte, "1000000000"},
		{Terabyte, "1000000000000"},
		{Petabyte, "1000000000000000"},
		{Exabyte, "1000000000000000000"},
		{Zettabyte, "1000000000000000000000"},
		{Yottabyte, "1000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			if got := tt.unit.Multiplier().String(); got != tt.want {
				t.Errorf("Multiplier() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseByteUnit(t *testing.T) {
	tests := []struct {
		token string
		want  ByteUnit
		ok    bool
	}{
		{"B", Byte, true},
		{"b", Byte, true},
		{"kB", Kilobyte, true},
		{"Kb", Kilobyte, true},
		{"KB", Kilobyte, true},
		{"mb", Megabyte, true},
		{"gb", Gigabyte, true},
		{"tb", Terabyte, true},
		{"pb", Petabyte, true},
		{"eb", Exabyte, true},
		{"zb", Zettabyte, true},
		{"yb", Yottabyte, true},
		{"XB", "", false},
		{"ML", "", false},
		{"MMMB", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseByteUnit(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParseByteUnit(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseByteUnit(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPeriodSeconds(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{Second, "1"},
		{Minute, "60"},
		{Hour, "3600"},
		{Day, "86400"},
		{Week, "604800"},
		{Month, "2592000"},
		{Year, "31536000"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			if got := tt.period.Seconds().String(); got != tt.want {
				t.Errorf("Seconds() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePeriodAliases(t *testing.T) {
	tests := []struct {
		token string
		want  Period
	}{
		{"s", Second}, {"sec", Second}, {"second", Second},
		{"S", Second}, {"SEC", Second}, {"SeC", Second},
		{"m", Minute}, {"min", Minute}, {"minute", Minute},
		{"h", Hour}, {"hr", Hour}, {"hour", Hour},
		{"d", Day}, {"day", Day},
		{"w", Week}, {"wk", Week}, {"week", Week},
		{"mon", Month}, {"month", Month},
		{"y", Year}, {"yr", Year}, {"year", Year},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParsePeriod(tt.token)
			if !ok {
				t.Fatalf("ParsePeriod(%q) not recognized", tt.token)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}

	for _, token := range []string{"", "ps", "fortnight", "seconds"} {
		if _, ok := ParsePeriod(token); ok {
			t.Errorf("ParsePeriod(%q) unexpectedly recognized", token)
		}
	}
}

func TestAcceptedLists(t *testing.T) {
	if got, want := AcceptedUnits(), "B KB MB GB TB PB EB ZB YB"; got != want {
		t.Errorf("AcceptedUnits() = %q, want %q", got, want)
	}
	if got, want := AcceptedPeriods(), "sec min hour day week month year"; got != want {
		t.Errorf("AcceptedPeriods() = %q, want %q", got, want)
	}
}
