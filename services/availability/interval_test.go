package availability

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"09:00", 540},
		{"00:00", 0},
		{"23:45", 1425},
		{"9:5", 545},
		{"", 0},
		{"garbage", 0},
		{"12", 720},
		{"12:xx", 720},
		{"xx:30", 30},
	}
	for _, tc := range cases {
		if got := ParseTimeOfDay(tc.in); got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	cases := []struct {
		in   TimeOfDay
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{570, "09:30"},
		{1425, "23:45"},
		{65, "01:05"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("TimeOfDay(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseIntervalRange(t *testing.T) {
	cases := []struct {
		in   string
		want Interval
	}{
		{"09:00-10:00", Interval{540, 600}},
		{" 09:00 - 10:00 ", Interval{540, 600}},
		{"", Interval{}},
		{"09:00", Interval{}},
		{"garbage-more", Interval{}},
	}
	for _, tc := range cases {
		if got := ParseIntervalRange(tc.in); got != tc.want {
			t.Errorf("ParseIntervalRange(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
