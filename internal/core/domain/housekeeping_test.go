package domain

import "testing"

func TestHousekeepingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    HousekeepingStatus
		to      HousekeepingStatus
		allowed bool
	}{
		{StatusDirty, StatusCleaning, true},
		{StatusCleaning, StatusInspected, true},
		{StatusInspected, StatusVacant, true},
		{StatusDirty, StatusInspected, false},
		{StatusDirty, StatusVacant, false},
		{StatusCleaning, StatusDirty, false},
		{StatusCleaning, StatusVacant, false},
		{StatusInspected, StatusDirty, false},
		{StatusVacant, StatusDirty, false},
		{StatusVacant, StatusCleaning, false},
		{StatusVacant, StatusVacant, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestHousekeepingStatus_Valid(t *testing.T) {
	for _, s := range []HousekeepingStatus{StatusDirty, StatusCleaning, StatusInspected, StatusVacant} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if HousekeepingStatus("SPARKLING").Valid() {
		t.Error("unknown status should be invalid")
	}
	if HousekeepingStatus("dirty").Valid() {
		t.Error("statuses are case-sensitive")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleGuest, RoleHousekeeping, RoleAdmin} {
		if !ValidRole(r) {
			t.Errorf("%s should be valid", r)
		}
	}
	if ValidRole("MANAGER") {
		t.Error("unknown role should be invalid")
	}
}
