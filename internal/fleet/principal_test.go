package fleet

import "testing"

func TestCanWriteMatrix(t *testing.T) {
	cases := []struct {
		role   Role
		module Module
		want   bool
	}{
		{RoleManager, ModuleVehicles, true},
		{RoleManager, ModuleExpenses, true},
		{RoleDispatcher, ModuleTrips, true},
		{RoleDispatcher, ModuleVehicles, false},
		{RoleDispatcher, ModuleDrivers, false},
		{RoleSafetyOfficer, ModuleDrivers, true},
		{RoleSafetyOfficer, ModuleTrips, false},
		{RoleFinancialAnalyst, ModuleMaintenance, true},
		{RoleFinancialAnalyst, ModuleExpenses, true},
		{RoleFinancialAnalyst, ModuleVehicles, false},
	}
	for _, tc := range cases {
		if got := tc.role.CanWrite(tc.module); got != tc.want {
			t.Errorf("CanWrite(%s, %s) = %v, want %v", tc.role, tc.module, got, tc.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, ok := ParseRole("Manager"); !ok {
		t.Fatalf("Manager should parse")
	}
	if _, ok := ParseRole("Safety Officer"); !ok {
		t.Fatalf("Safety Officer should parse")
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatalf("roles outside the closed set should not parse")
	}
	if _, ok := ParseRole(""); ok {
		t.Fatalf("empty role should not parse")
	}
}
