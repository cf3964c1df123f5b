package domain

import "time"

// User roles shared by the backend and the bot.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	UserID         string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"` // E.164
	PasswordHash   string     `json:"-"`
	Role           string     `json:"role"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Language       string     `json:"language"`
	Credits        int64      `json:"credits"`
	ContactShared  bool       `json:"contact_shared"`
	PhoneConfirmed bool       `json:"phone_confirmed"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	CreatedAt      time.Time  `json:"created"`
	UpdatedAt      time.Time  `json:"updated"`
}

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=32"`
	Password  string  `json:"password" validate:"required,min=8,max=128"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
	Language  string  `json:"language" validate:"omitempty,oneof=uz ru en"`
	Role      string  `json:"role" validate:"omitempty,oneof=user admin super_admin"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=32"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
	Language  *string `json:"language" validate:"omitempty,oneof=uz ru en"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
