package bios

// errKind tags which of spec.md §7's three error categories a handler hit.
// It is never returned to a caller or used for control flow across a
// package boundary — handlers never fail — it only selects which logger
// call and message template a given code path uses, keeping the three
// kinds textually distinct at the call site.
type errKind int

const (
	kindStub errKind = iota
	kindGameError
	kindPassthrough
)
