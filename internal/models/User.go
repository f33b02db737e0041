// internal/models/user.go
package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role"` // "Manager", "Dispatcher", "Safety Officer", "Financial Analyst"
}
