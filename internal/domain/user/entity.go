package user

import "time"

type Role string

const (
	RoleOwner  Role = "owner"  // Company owner, full dashboard access
	RoleWorker Role = "worker" // Field worker, clock-in/out only
)

type User struct {
	ID           string
	CompanyID    string
	Email        *string
	PhoneNumber  *string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Set for worker accounts created through invite acceptance.
	WorkerID *string
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanManageCompany gates worker/job/payroll management endpoints.
func (u *User) CanManageCompany() bool {
	return u.IsOwner()
}
