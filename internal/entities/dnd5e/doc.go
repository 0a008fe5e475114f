// Package dnd5e holds the D&D 5e character records: the transient draft a
// player assembles and the durable character it finalizes into.
//
// These are data structs. Rules math lives in internal/rules.
package dnd5e
