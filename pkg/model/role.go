package model

// Role is the access class of an account. It is set at creation and never
// changes; there is no promotion or demotion operation.
//
//go:generate go run github.com/dmarkham/enumer -type=Role -trimprefix=Role -transform=lower -json -sql
type Role int

const (
	RoleReporter Role = iota
	RoleAdmin
)
