package models

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Email        string `json:"email" db:"email"`
	FullName     string `json:"fullName" db:"full_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AdminUpdateRequest changes only the non-empty fields; CurrentPassword must
// match the stored hash.
type AdminUpdateRequest struct {
	FullName        string `json:"fullName" binding:"omitempty,min=2"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword" binding:"required,min=6"`
	Password        string `json:"password" binding:"omitempty,min=6"`
}
