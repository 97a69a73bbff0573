// Package entity contains the core business objects of the project.
package entity

import "time"

// Station is a named stop of the transit network.
// The name is its identity; coordinates never change after creation.
type Station struct {
	Name      string  // Unique, human-readable name, e.g. "Clock Tower".
	Latitude  float64 // The geographic latitude in degrees.
	Longitude float64 // The geographic longitude in degrees.
}

// Route is the outcome of a single or multi-leg route query
type Route struct {
	From           string   // First station of the path.
	To             string   // Last station of the path.
	Stations       []string // Ordered station names, junctions appear once.
	EtaMinutes     float64  // Total edge weight along the path.
	OriginResolved bool     // True when the origin came from the nearest-station lookup.
}

// Eta is a precomputed shortest path weight between two stations
type Eta struct {
	From       string
	To         string
	EtaMinutes float64
	Algorithm  string
}

// NetworkDiagnostic is a non-fatal problem found while building the network
type NetworkDiagnostic struct {
	Kind    string
	From    string
	To      string
	Message string
}

// NetworkStatus describes the currently published transit network
type NetworkStatus struct {
	Version     int64
	Ready       bool
	Stations    int
	Edges       int
	BuiltAt     time.Time
	Diagnostics []NetworkDiagnostic
}
