package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2022", "ssh localhost -p 2022"},
		{"[::]:2022", "ssh localhost -p 2022"},
		{"games.example.com:4000", "ssh games.example.com -p 4000"},
		{"10.0.0.5:22", "ssh 10.0.0.5"},
		{"badaddr", "ssh badaddr"},
	}

	for _, tc := range tests {
		if got := connectHint(tc.addr); got != tc.want {
			t.Errorf("connectHint(%q) = %q, expected %q", tc.addr, got, tc.want)
		}
	}
}
