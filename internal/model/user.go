package model

import "time"

// Роли учётных записей.
const (
	RolePlayer  = "player"
	RoleTrainer = "trainer"
)

// User — серверная модель пользователя.
// Один email может быть зарегистрирован отдельно для каждой роли.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"type:uuid;uniqueIndex;not null" json:"publicId"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email_role" json:"email"`
	Role     string `gorm:"not null;uniqueIndex:idx_users_email_role" json:"role"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`

	// Параметры игрока, у тренера пустые
	Age        *int     `json:"age,omitempty"`
	Bodyweight *float64 `json:"bodyweight,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	SexAtBirth *string  `json:"sexAtBirth,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// ValidRole сообщает, известна ли роль серверу.
func ValidRole(role string) bool {
	return role == RolePlayer || role == RoleTrainer
}
