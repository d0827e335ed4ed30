package domain

import "strings"

// Staff models an employee from the company directory. Requesters and
// support (AHO) operations staff share the same record shape; the
// IsSupport flag marks who may be assigned tickets and drive the workflow.
type Staff struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	MiddleName   string
	Position     string
	Role         string
	OfficeID     int64
	SupervisorID *int64
	IsSupport    bool
}

// IsSupportRole reports whether a raw directory role string matches one of
// the configured support markers. Matching is a case-insensitive substring
// check; it is only applied at directory-sync time to maintain IsSupport.
func IsSupportRole(role string, markers []string) bool {
	lowered := strings.ToLower(role)
	for _, marker := range markers {
		marker = strings.TrimSpace(strings.ToLower(marker))
		if marker == "" {
			continue
		}
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
