package units

import "testing"

func TestFollowersWan(t *testing.T) {
	cases := []struct {
		raw      Followers
		expected WanFollowers
	}{
		{0, 0},
		{10000, 1},
		{1000000, 100},
		{123456, 12.3456},
	}
	for _, c := range cases {
		if got := c.raw.Wan(); got != c.expected {
			t.Errorf("Followers(%v).Wan() = %v, expected %v", c.raw, got, c.expected)
		}
	}
}

func TestWanFollowersRaw(t *testing.T) {
	cases := []struct {
		wan      WanFollowers
		expected Followers
	}{
		{0, 0},
		{1, 10000},
		{100, 1000000},
		{12.5, 125000},
	}
	for _, c := range cases {
		if got := c.wan.Raw(); got != c.expected {
			t.Errorf("WanFollowers(%v).Raw() = %v, expected %v", c.wan, got, c.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	original := Followers(987654)
	if back := original.Wan().Raw(); back != original {
		t.Errorf("round trip changed %v to %v", original, back)
	}
}
