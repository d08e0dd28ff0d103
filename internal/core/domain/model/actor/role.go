package actor

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Role identifies the function an organization performs in the supply chain.
// It determines which orders an actor may hold custody of and which
// administrative overrides it is granted.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOrderingParty identifies an organization that places orders.
	RoleOrderingParty

	// RoleManufacturer identifies an organization that receives and fulfils orders.
	// A newly created order is placed in the custody of its target manufacturer.
	RoleManufacturer

	// RoleSupplier identifies an organization eligible to take custody
	// when an order is shipped or delivered.
	RoleSupplier

	// RoleLogistics identifies a carrier eligible to take custody
	// when an order is shipped or delivered.
	RoleLogistics

	// RoleAdmin identifies an operator allowed to act on any order
	// regardless of who currently holds custody.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "Unknown",
		RoleOrderingParty: "OrderingParty",
		RoleManufacturer:  "Manufacturer",
		RoleSupplier:      "Supplier",
		RoleLogistics:     "Logistics",
		RoleAdmin:         "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOrderingParty: "OrderingParty",
		RoleManufacturer:  "Manufacturer",
		RoleSupplier:      "Supplier",
		RoleLogistics:     "Logistics",
		RoleAdmin:         "Admin",
	}
}

// RoleFromString parses a Role from its string name, matching the values
// produced by String(). Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for invalid role values.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CanTakeCustody reports whether an actor with this role is eligible to become
// the custodian of an order on a Ship or Deliver step. The combined pool of
// suppliers and carriers matches the way the ordering workflow is operated:
// either role may receive custody at either step.
func (r Role) CanTakeCustody() bool {
	return r == RoleSupplier || r == RoleLogistics
}
