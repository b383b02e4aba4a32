package version

import (
	"errors"
	"testing"
)

func ptr(s string) *Version {
	v := MustParse(s)
	return &v
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"1.7.0", Version{1, 7, 0}, false},
		{" 1.8.0\n", Version{1, 8, 0}, false},
		{"0.0.0", Version{0, 0, 0}, false},
		{"10.20.30", Version{10, 20, 30}, false},
		{"1.7", Version{}, true},
		{"1.7.0.1", Version{}, true},
		{"v1.7.0", Version{}, true},
		{"1.x.0", Version{}, true},
		{"1.-1.0", Version{}, true},
		{"1..0", Version{}, true},
		{"", Version{}, true},
		{"1.7.0-beta", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Version
		want int
	}{
		{"equal", ptr("1.7.0"), ptr("1.7.0"), 0},
		{"major", ptr("1.9.9"), ptr("2.0.0"), -1},
		{"minor", ptr("1.8.0"), ptr("1.7.9"), 1},
		{"patch", ptr("1.7.1"), ptr("1.7.2"), -1},
		{"numeric not lexical", ptr("1.10.0"), ptr("1.9.0"), 1},
		{"absent before concrete", nil, ptr("0.0.0"), -1},
		{"concrete after absent", ptr("0.0.0"), nil, 1},
		// Two absent versions are not equal: a nil left side is always less.
		{"both absent", nil, nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	ordered := []string{"0.0.1", "0.1.0", "1.0.0", "1.7.0", "1.7.1", "1.8.0", "2.0.0"}
	for i := range ordered {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ptr(ordered[i]), ptr(ordered[j])
			if Compare(a, b) != -1 || Compare(b, a) != 1 {
				t.Errorf("expected %s < %s", ordered[i], ordered[j])
			}
		}
		if Compare(ptr(ordered[i]), ptr(ordered[i])) != 0 {
			t.Errorf("expected %s == itself", ordered[i])
		}
	}
}

func TestCompareStrings(t *testing.T) {
	got, err := CompareStrings("", "1.7.0")
	if err != nil || got != -1 {
		t.Errorf("CompareStrings(\"\", 1.7.0) = %d, %v", got, err)
	}

	if _, err := CompareStrings("garbage", "1.7.0"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestString(t *testing.T) {
	if s := MustParse("01.02.03").String(); s != "1.2.3" {
		t.Errorf("String() = %q, want 1.2.3", s)
	}
}
