package model

import (
	"testing"
	"time"
)

func TestIsAccountedRole(t *testing.T) {
	for _, role := range AccountedRoles {
		if !IsAccountedRole(role) {
			t.Errorf("IsAccountedRole(%q) = false", role)
		}
	}
	for _, role := range []string{"Customer", "", "admin", "Staff"} {
		if IsAccountedRole(role) {
			t.Errorf("IsAccountedRole(%q) = true", role)
		}
	}
}

func TestIsValidReaction(t *testing.T) {
	for _, r := range ValidReactions {
		if !IsValidReaction(r) {
			t.Errorf("IsValidReaction(%q) = false", r)
		}
	}
	for _, r := range []string{"Like", "dislike", ""} {
		if IsValidReaction(r) {
			t.Errorf("IsValidReaction(%q) = true", r)
		}
	}
}

func TestStaffLogOpen(t *testing.T) {
	log := StaffLog{TimeIn: time.Now()}
	if !log.Open() {
		t.Error("nil time_out must report open")
	}

	out := time.Now()
	log.TimeOut = &out
	if log.Open() {
		t.Error("set time_out must report closed")
	}
}
