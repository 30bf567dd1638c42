package models

import "testing"

func TestRoleValid(t *testing.T) {
	valid := []Role{RoleRecruiter, RoleCandidate}
	for _, r := range valid {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	invalid := []Role{"", "Admin", "recruiter", "CANDIDATE"}
	for _, r := range invalid {
		if r.Valid() {
			t.Errorf("role %q should be invalid", r)
		}
	}
}

func TestApplicationStatusValid(t *testing.T) {
	valid := []ApplicationStatus{StatusApplied, StatusInterviewing, StatusHired, StatusRejected}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	invalid := []ApplicationStatus{"", "Ghosted", "applied", "HIRED"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}
