// Package rules holds the D&D 5e character creation rules: ability score
// generation, derived combat stats and spellcasting profiles, together with
// the static class, race, background and equipment tables they read.
//
// Everything here is pure or reads immutable tables. Randomness comes in
// through an injected dice.Roller.
package rules
