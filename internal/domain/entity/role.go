package entity

// Role is the closed set of actor roles known to the platform.
// The server sends roles as uppercase strings; anything outside this set is invalid.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleStockManager Role = "STOCK_MANAGER"
	RoleCashier      Role = "CASHIER"
	RoleReseller     Role = "RESELLER"
	RoleDelivery     Role = "DELIVERY"
	RoleCustomer     Role = "CUSTOMER"
)

// AllRoles returns every valid role, in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleStockManager, RoleCashier, RoleReseller, RoleDelivery, RoleCustomer}
}

// StaffRoles are the roles allowed into the back-office.
func StaffRoles() []Role {
	return []Role{RoleAdmin, RoleStockManager, RoleCashier}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStockManager, RoleCashier, RoleReseller, RoleDelivery, RoleCustomer:
		return true
	}
	return false
}

// In reports whether r is a member of the given set.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
