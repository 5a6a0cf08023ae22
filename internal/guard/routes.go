package guard

import "github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"

// Navigable paths of the application.
const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathShop      = "/shop"
	PathWholesale = "/wholesale"
	PathCart      = "/cart"
	PathCheckout  = "/checkout"
	PathProfile   = "/profile"
	PathMyOrders  = "/orders"

	PathAdmin           = "/admin"
	PathAdminPOS        = "/admin/pos"
	PathAdminProducts   = "/admin/products"
	PathAdminCategories = "/admin/categories"
	PathAdminStock      = "/admin/stock"
	PathAdminOrders     = "/admin/orders"
	PathAdminDeliveries = "/admin/deliveries"
	PathAdminUsers      = "/admin/users"

	PathDriver = "/driver"
)

// DefaultRoutes is the application's route table: public shop pages, the
// authenticated customer area, the role-gated back-office, the register (POS)
// and the driver console.
func DefaultRoutes() []Route {
	staff := entity.StaffRoles()
	return []Route{
		{Path: PathHome},
		{Path: PathLogin},
		{Path: PathRegister},
		{Path: PathShop},
		{Path: PathWholesale},
		{Path: PathCart},

		{Path: PathCheckout, Protected: true},
		{Path: PathProfile, Protected: true},
		{Path: PathMyOrders, Protected: true},

		{Path: PathAdmin, Protected: true, RequiredRoles: staff},
		{Path: PathAdminPOS, Protected: true, RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleCashier}},
		{Path: PathAdminProducts, Protected: true, RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleStockManager}},
		{Path: PathAdminCategories, Protected: true, RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleStockManager}},
		{Path: PathAdminStock, Protected: true, RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleStockManager}},
		{Path: PathAdminOrders, Protected: true, RequiredRoles: staff},
		{Path: PathAdminDeliveries, Protected: true, RequiredRoles: staff},
		{Path: PathAdminUsers, Protected: true, RequiredRoles: []entity.Role{entity.RoleAdmin}},

		{Path: PathDriver, Protected: true, RequiredRoles: []entity.Role{entity.RoleDelivery}},
	}
}
