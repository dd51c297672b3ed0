package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
		ok   bool
	}{
		{"Created", StatusCreated, true},
		{"processing", StatusProcessing, true},
		{"SHIPPED", StatusShipped, true},
		{" delivered ", StatusDelivered, true},
		{"cAnCeLlEd", StatusCancelled, true},
		{"", "", false},
		{"Refunded", "", false},
		{"Created ok", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStatus(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		StatusCreated:    false,
		StatusProcessing: false,
		StatusShipped:    false,
		StatusDelivered:  true,
		StatusCancelled:  true,
	}
	for st, want := range terminal {
		if st.Terminal() != want {
			t.Fatalf("%s.Terminal() = %v, want %v", st, st.Terminal(), want)
		}
	}
}
