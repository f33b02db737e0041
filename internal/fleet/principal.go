package fleet

// Role is one of the four operator roles. The role set is closed; anything
// outside it is rejected at registration.
type Role string

const (
	RoleManager          Role = "Manager"
	RoleDispatcher       Role = "Dispatcher"
	RoleSafetyOfficer    Role = "Safety Officer"
	RoleFinancialAnalyst Role = "Financial Analyst"
)

// Module names the writable areas of the system for capability checks.
type Module string

const (
	ModuleVehicles    Module = "vehicles"
	ModuleTrips       Module = "trips"
	ModuleDrivers     Module = "drivers"
	ModuleMaintenance Module = "maintenance"
	ModuleExpenses    Module = "expenses"
)

// writePerms is the static capability matrix: which roles may mutate which
// module. Reads are open to any authenticated principal.
var writePerms = map[Module][]Role{
	ModuleVehicles:    {RoleManager},
	ModuleTrips:       {RoleManager, RoleDispatcher},
	ModuleDrivers:     {RoleManager, RoleSafetyOfficer},
	ModuleMaintenance: {RoleManager, RoleFinancialAnalyst},
	ModuleExpenses:    {RoleManager, RoleFinancialAnalyst},
}

// CanWrite reports whether the role may mutate the given module.
func (r Role) CanWrite(m Module) bool {
	for _, allowed := range writePerms[m] {
		if r == allowed {
			return true
		}
	}
	return false
}

// ParseRole validates a role string against the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst:
		return Role(s), true
	}
	return "", false
}

// Principal is the authenticated caller, passed request-scoped into every
// core operation. Never ambient, never global.
type Principal struct {
	UserID uint
	Name   string
	Role   Role
}
