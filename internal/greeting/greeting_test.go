package greeting

import "testing"

func TestForHour_AllHours(t *testing.T) {
	for hour := range 24 {
		var want string
		switch {
		case 5 <= hour && hour < 12:
			want = Morning
		case 12 <= hour && hour < 17:
			want = Afternoon
		default:
			want = Evening
		}
		if got := ForHour(hour); got != want {
			t.Errorf("ForHour(%d) = %q, want %q", hour, got, want)
		}
	}
}

func TestForHour_Boundaries(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good evening"},
		{4, "Good evening"},
		{5, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}

	for _, tt := range tests {
		if got := ForHour(tt.hour); got != tt.want {
			t.Errorf("ForHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
