package entity

// RoleType is the role tag carried in the token "type" claim.
// The seller tag is camel-cased on purpose; issued tokens already use it.
type RoleType string

const (
	RoleAdmin  RoleType = "adminuser"
	RoleGuest  RoleType = "guestuser"
	RoleMember RoleType = "memberuser"
	RoleSeller RoleType = "sellerUser"
)

func Roles() []RoleType {
	return []RoleType{RoleAdmin, RoleGuest, RoleMember, RoleSeller}
}

func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGuest, RoleMember, RoleSeller:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusInactive  AccountStatus = "inactive"
	AccountStatusSuspended AccountStatus = "suspended"
)

// Account is a row of admin_users, member_users, seller_users or guest_users.
type Account struct {
	Base
	Role   RoleType      `db:"-"`
	Email  string        `db:"email"`
	Name   string        `db:"name"`
	Status AccountStatus `db:"status"`
}

func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive && !a.Lifecycle.IsDeleted()
}
