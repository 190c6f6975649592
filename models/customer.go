package models

import (
	"time"
)

type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName *string   `gorm:"type:varchar(100)" json:"middle_name,omitempty"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone      *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// FullName menghasilkan nama tampilan lengkap dari field nama customer
func (c *Customer) FullName() string {
	middle := ""
	if c.MiddleName != nil {
		middle = *c.MiddleName
	}
	return ComposeFullName(c.FirstName, middle, c.LastName)
}
