package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
