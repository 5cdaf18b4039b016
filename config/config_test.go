package config

import "testing"

var canonical = []struct {
	id   Config
	name string
}{
	{S2T, "s2t"}, {S2TW, "s2tw"}, {S2TWP, "s2twp"}, {S2HK, "s2hk"},
	{T2S, "t2s"}, {T2TW, "t2tw"}, {T2TWP, "t2twp"}, {T2HK, "t2hk"},
	{TW2S, "tw2s"}, {TW2SP, "tw2sp"}, {TW2T, "tw2t"}, {TW2TP, "tw2tp"},
	{HK2S, "hk2s"}, {HK2T, "hk2t"}, {JP2T, "jp2t"}, {T2JP, "t2jp"},
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range canonical {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NameToID(tt.name)
			if !ok {
				t.Fatalf("NameToID(%q) not found", tt.name)
			}
			if id != tt.id {
				t.Fatalf("NameToID(%q) = %d, want %d", tt.name, id, tt.id)
			}
			name, ok := IDToName(id)
			if !ok || name != tt.name {
				t.Fatalf("IDToName(%d) = %q/%v, want %q", id, name, ok, tt.name)
			}
		})
	}
}

func TestNameToIDCaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want Config
	}{
		{"S2TWP", S2TWP},
		{"s2twp", S2TWP},
		{"S2twP", S2TWP},
		{"Tw2Sp", TW2SP},
		{"T2JP", T2JP},
	}
	for _, tt := range tests {
		id, ok := NameToID(tt.in)
		if !ok || id != tt.want {
			t.Errorf("NameToID(%q) = %d/%v, want %d", tt.in, id, ok, tt.want)
		}
	}
}

func TestNameToIDUnknown(t *testing.T) {
	for _, name := range []string{"", "s2", "s2t ", "zh2en", "s2twpx", "2t", "ss2tt"} {
		if id, ok := NameToID(name); ok {
			t.Errorf("NameToID(%q) = %d, want not found", name, id)
		}
	}
}

func TestIDToNameOutOfRange(t *testing.T) {
	for _, id := range []Config{0, 17, 9999, ^Config(0)} {
		if name, ok := IDToName(id); ok {
			t.Errorf("IDToName(%d) = %q, want not found", id, name)
		}
	}
}

func TestIsValid(t *testing.T) {
	if IsValid(0) || IsValid(17) {
		t.Error("0 and 17 must be invalid")
	}
	for id := S2T; id <= T2JP; id++ {
		if !IsValid(id) {
			t.Errorf("IsValid(%d) = false", id)
		}
	}
}
