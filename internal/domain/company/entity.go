package company

import "time"

type Company struct {
	ID        string
	Name      string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
