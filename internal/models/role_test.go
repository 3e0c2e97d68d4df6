package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"clinic1", RoleClinic1},
		{"clinic 1", RoleClinic1},
		{"Clinic 2", RoleClinic2},
		{"clinic-3", RoleClinic3},
		{"CLINIC   2", RoleClinic2},
		{"clinic 9", RoleOwner}, // no such clinic
		{"pet-boarding", RoleBoarding},
		{"boarding", RoleBoarding},
		{"pet-boarding-2", RoleBoarding2},
		{"boarding2", RoleBoarding2},
		{"pet-training", RoleTraining},
		{"training", RoleTraining},
		{"owner", RoleOwner},
		{"", RoleOwner},
		{"  owner  ", RoleOwner},
		{"groomer", RoleOwner},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.raw); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"clinic 2", RoleClinic2, true},
		{"boarding", RoleBoarding, true},
		{"owner", RoleOwner, true},
		{"", RoleOwner, true},
		{"groomer", "", false},
		{"clinic 9", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalRole(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CanonicalRole(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRoleClinic(t *testing.T) {
	tests := []struct {
		role Role
		want int
	}{
		{RoleClinic1, 1},
		{RoleClinic2, 2},
		{RoleClinic3, 3},
		{RoleBoarding, 0},
		{RoleTraining, 0},
		{RoleAdmin, 0},
		{RoleOwner, 0},
	}
	for _, tt := range tests {
		if got := tt.role.Clinic(); got != tt.want {
			t.Errorf("%s.Clinic() = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestRoleIsStaff(t *testing.T) {
	staff := []Role{RoleClinic1, RoleClinic2, RoleClinic3, RoleBoarding, RoleBoarding2, RoleTraining, RoleAdmin}
	for _, r := range staff {
		if !r.IsStaff() {
			t.Errorf("%s.IsStaff() = false, want true", r)
		}
	}
	if RoleOwner.IsStaff() {
		t.Error("owner should not be staff")
	}
}

func TestRoleServiceTags(t *testing.T) {
	for _, r := range []Role{RoleClinic1, RoleClinic2, RoleClinic3} {
		tags := r.ServiceTags()
		if len(tags) != 2 || tags[0] != ServiceGrooming || tags[1] != ServiceVeterinary {
			t.Errorf("%s.ServiceTags() = %v, want grooming and veterinary", r, tags)
		}
	}
	if tags := RoleBoarding.ServiceTags(); len(tags) != 1 || tags[0] != ServiceBoarding {
		t.Errorf("boarding ServiceTags() = %v", tags)
	}
	if tags := RoleTraining.ServiceTags(); len(tags) != 1 || tags[0] != ServiceTraining {
		t.Errorf("training ServiceTags() = %v", tags)
	}
	if tags := RoleAdmin.ServiceTags(); tags != nil {
		t.Errorf("admin ServiceTags() = %v, want nil", tags)
	}
}
