package chem

//go:generate go tool stringer --type PhaseKind --linecomment --output kind_string.go

// PhaseKind classifies a [Phase].
type PhaseKind int

const (
	Aqueous PhaseKind = iota // aqueous
	Gaseous                  // gaseous
	Mineral                  // mineral
)
