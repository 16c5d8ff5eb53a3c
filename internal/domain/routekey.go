// Package domain contains the core business entities and rules for the route
// analytics engine. These entities are source-agnostic and form the foundation
// upon which all other components are built.
package domain

import "strings"

// RouteKeySeparator joins the two airport codes of an undirected route key.
const RouteKeySeparator = "-"

// LegDirectionSeparator joins origin and destination of a directional leg key.
const LegDirectionSeparator = ">"

// RouteKey derives the undirected, canonical identifier for an airport pair.
// Both codes are trimmed and uppercased, then joined in lexicographic order,
// so RouteKey(a, b) == RouteKey(b, a) for every pair of codes.
func RouteKey(origin, dest string) string {
	o := canonicalCode(origin)
	d := canonicalCode(dest)
	if d < o {
		o, d = d, o
	}
	return o + RouteKeySeparator + d
}

// LegDirection derives the ordered identifier for a specific origin-to-destination
// flight direction. Unlike RouteKey it preserves input order, so
// LegDirection(a, b) != LegDirection(b, a) whenever the codes differ.
func LegDirection(origin, dest string) string {
	return canonicalCode(origin) + LegDirectionSeparator + canonicalCode(dest)
}

// canonicalCode normalizes a raw airport code: trimmed and uppercased.
func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
