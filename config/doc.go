// Package config is the registry of conversion directions.
//
// Every direction has a canonical lowercase ASCII name ("s2t", "tw2sp")
// and a stable numeric id. The mapping is a total bijection over
// exactly sixteen values; ids are part of the foreign-caller contract
// and are never reassigned. Id 0 and ids above T2JP are always invalid.
//
// All functions are pure, allocation-free and safe for concurrent use.
package config
