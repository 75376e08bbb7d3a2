package models

// User is the back-office administrator account. The storefront has no
// customer accounts; checkout is anonymous and keyed by phone number.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}
