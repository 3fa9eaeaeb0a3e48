package permissions

import "dinein-api/models"

// Capability names the eight dashboard capabilities
type Capability string

const (
	CanManageMenu        Capability = "canManageMenu"
	CanManageOrders      Capability = "canManageOrders"
	CanManageTables      Capability = "canManageTables"
	CanManageStaff       Capability = "canManageStaff"
	CanViewReports       Capability = "canViewReports"
	CanManageSettings    Capability = "canManageSettings"
	CanUpdateOrderStatus Capability = "canUpdateOrderStatus"
	CanVerifyPayments    Capability = "canVerifyPayments"
)

// Set is the fixed capability record granted to a role
type Set struct {
	ManageMenu        bool `json:"canManageMenu"`
	ManageOrders      bool `json:"canManageOrders"`
	ManageTables      bool `json:"canManageTables"`
	ManageStaff       bool `json:"canManageStaff"`
	ViewReports       bool `json:"canViewReports"`
	ManageSettings    bool `json:"canManageSettings"`
	UpdateOrderStatus bool `json:"canUpdateOrderStatus"`
	VerifyPayments    bool `json:"canVerifyPayments"`
}

// ForRole returns the capability set for a role. The switch is exhaustive
// over the four known roles; anything else gets the zero set (deny all).
func ForRole(role models.StaffRole) Set {
	switch role {
	case models.RoleAdmin:
		return Set{
			ManageMenu:        true,
			ManageOrders:      true,
			ManageTables:      true,
			ManageStaff:       true,
			ViewReports:       true,
			ManageSettings:    true,
			UpdateOrderStatus: true,
			VerifyPayments:    true,
		}
	case models.RoleManager:
		return Set{
			ManageMenu:        true,
			ManageOrders:      true,
			ManageTables:      true,
			ViewReports:       true,
			UpdateOrderStatus: true,
			VerifyPayments:    true,
		}
	case models.RoleKitchen:
		return Set{
			UpdateOrderStatus: true,
		}
	case models.RoleWaiter:
		return Set{
			ManageOrders:      true,
			ManageTables:      true,
			UpdateOrderStatus: true,
		}
	}
	return Set{}
}

// HasPermission is a pure lookup into the static role → capability table
func HasPermission(role models.StaffRole, cap Capability) bool {
	s := ForRole(role)
	switch cap {
	case CanManageMenu:
		return s.ManageMenu
	case CanManageOrders:
		return s.ManageOrders
	case CanManageTables:
		return s.ManageTables
	case CanManageStaff:
		return s.ManageStaff
	case CanViewReports:
		return s.ViewReports
	case CanManageSettings:
		return s.ManageSettings
	case CanUpdateOrderStatus:
		return s.UpdateOrderStatus
	case CanVerifyPayments:
		return s.VerifyPayments
	}
	return false
}
