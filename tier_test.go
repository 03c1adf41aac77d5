package ladder

import "testing"

func TestThresholdsStrictlyIncreasing(t *testing.T) {
	for f := Family(0); f < familyCount; f++ {
		prev, _ := Tier2.Min(f)
		for k := Tier3; k <= Tier5; k++ {
			min, ok := k.Min(f)
			if !ok {
				t.Fatalf("%v has no minimum for %v", k, f)
			}
			if !min.AtLeast(prev) || min == prev {
				t.Errorf("%v: %v minimum %v is not above %v", f, k, min, prev)
			}
			prev = min
		}
	}
}

func TestTier1HasNoMinimum(t *testing.T) {
	for f := Family(0); f < familyCount; f++ {
		if _, ok := Tier1.Min(f); ok {
			t.Errorf("Tier1 must not have a minimum for %v", f)
		}
	}
}

func TestAtLeast(t *testing.T) {
	cases := []struct {
		v, min Version
		want   bool
	}{
		{Version{13, 0}, Version{13, 0}, true},
		{Version{13, 1}, Version{13, 0}, true},
		{Version{14, 0}, Version{13, 5}, true},
		{Version{12, 9}, Version{13, 0}, false},
		{Version{13, 0}, Version{13, 1}, false},
		{Version{5, 15}, Version{5, 4}, true},
		{Version{0, 0}, Version{0, 0}, true},
	}
	for _, c := range cases {
		if got := c.v.AtLeast(c.min); got != c.want {
			t.Errorf("%v.AtLeast(%v) = %v, want %v", c.v, c.min, got, c.want)
		}
	}
}

func TestAppliesTo(t *testing.T) {
	t.Run("tier 1 applies everywhere", func(t *testing.T) {
		if !Tier1.appliesTo(Static{F: FamilyLinux}) {
			t.Error("Tier1 must apply at the zero version")
		}
		if !Tier1.appliesTo(Static{F: Family(99)}) {
			t.Error("Tier1 must apply on unknown families")
		}
	})

	t.Run("upper tiers never apply on unknown families", func(t *testing.T) {
		p := Static{F: Family(99), V: Version{999, 0}}
		for k := Tier2; k <= Tier5; k++ {
			if k.appliesTo(p) {
				t.Errorf("%v applied on an unknown family", k)
			}
		}
	})

	t.Run("inclusive at the minimum", func(t *testing.T) {
		min, _ := Tier4.Min(FamilyWindows)
		if !Tier4.appliesTo(Static{F: FamilyWindows, V: min}) {
			t.Error("a version equal to the minimum must satisfy the tier")
		}
	})
}

func TestStrings(t *testing.T) {
	if Tier3.String() != "tier3" {
		t.Errorf("Tier3.String() = %q", Tier3.String())
	}
	if FamilyDarwin.String() != "darwin" {
		t.Errorf("FamilyDarwin.String() = %q", FamilyDarwin.String())
	}
	if (Version{6, 1}).String() != "6.1" {
		t.Errorf("Version{6,1}.String() = %q", Version{6, 1}.String())
	}
}
