// Package bbref scrapes roster and depth chart tables from
// baseball-reference.com and returns them as normalized in-memory tables.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package bbref
