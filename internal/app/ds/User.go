package ds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleCreator   = "creator"
	RoleModerator = "moderator"
)

// @Schema(description="Operator account allowed to manage the fleet registry")
type User struct {
	UserID   int    `gorm:"primaryKey;column:user_id" json:"userId"`
	Login    string `gorm:"column:login;unique;not null" json:"login"`
	Password string `gorm:"column:password;not null" json:"password,omitempty"`
	Role     string `gorm:"column:role" json:"role"` // "creator" | "moderator"
}

// Хук для хеширования пароля перед сохранением
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a plain password with the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (User) TableName() string {
	return "users"
}
