package config

// Config selects one conversion direction by its stable numeric id.
//
// The type is a 32-bit unsigned integer so the values survive FFI to
// C, C#, Java and Python unchanged.
type Config uint32

// Conversion directions. Values are stable and never reordered; new
// directions may only be appended.
const (
	S2T   Config = 1  // Simplified -> Traditional
	S2TW  Config = 2  // Simplified -> Traditional (Taiwan)
	S2TWP Config = 3  // Simplified -> Traditional (Taiwan, with phrases)
	S2HK  Config = 4  // Simplified -> Traditional (Hong Kong)
	T2S   Config = 5  // Traditional -> Simplified
	T2TW  Config = 6  // Traditional -> Taiwan Traditional
	T2TWP Config = 7  // Traditional -> Taiwan Traditional (with phrases)
	T2HK  Config = 8  // Traditional -> Hong Kong Traditional
	TW2S  Config = 9  // Taiwan Traditional -> Simplified
	TW2SP Config = 10 // Taiwan Traditional -> Simplified (with phrases)
	TW2T  Config = 11 // Taiwan Traditional -> Traditional
	TW2TP Config = 12 // Taiwan Traditional -> Traditional (with phrases)
	HK2S  Config = 13 // Hong Kong Traditional -> Simplified
	HK2T  Config = 14 // Hong Kong Traditional -> Traditional
	JP2T  Config = 15 // Japanese Kanji variants -> Traditional
	T2JP  Config = 16 // Traditional -> Japanese Kanji variants

	// Default is the direction substituted by lenient entry points
	// when given an unknown name.
	Default = S2T
)

// names is indexed by id; index 0 is the invalid sentinel.
var names = [...]string{
	"",
	"s2t", "s2tw", "s2twp", "s2hk",
	"t2s", "t2tw", "t2twp", "t2hk",
	"tw2s", "tw2sp", "tw2t", "tw2tp",
	"hk2s", "hk2t",
	"jp2t", "t2jp",
}

// IsValid reports whether id is one of the sixteen registered
// directions.
func IsValid(id Config) bool {
	return id >= S2T && id <= T2JP
}

// NameToID resolves a direction name to its numeric id. Matching is
// case-insensitive over ASCII. Returns (0, false) when the name is not
// registered.
func NameToID(name string) (Config, bool) {
	if n := len(name); n < 3 || n > 5 {
		return 0, false
	}
	for id := S2T; id <= T2JP; id++ {
		if equalFold(name, names[id]) {
			return id, true
		}
	}
	return 0, false
}

// IDToName returns the canonical lowercase name for id, or ("", false)
// when id is outside 1..16.
func IDToName(id Config) (string, bool) {
	if !IsValid(id) {
		return "", false
	}
	return names[id], true
}

// equalFold compares s against the canonical lowercase name canon
// ignoring ASCII case, without allocating.
func equalFold(s, canon string) bool {
	if len(s) != len(canon) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != canon[i] {
			return false
		}
	}
	return true
}
