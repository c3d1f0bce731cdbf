package models

import "time"

// Attendee is a registered ticket buyer
type Attendee struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactInfo   string `json:"contactInfo"`
	Phone         string `json:"phone,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
	PasswordHash  []byte `json:"-"`
}

// AdminUser is a back-office account
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash []byte     `json:"-"`
	Active       bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Staff is an employee who can manage concerts or artists
type Staff struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// Artist is a performer, optionally represented by a staff manager
type Artist struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	ContactInfo     string `json:"contactInfo" validate:"required"`
	Availability    string `json:"availability,omitempty"`
	SocialMediaLink string `json:"socialMediaLink,omitempty"`
	ManagerID       *int64 `json:"managerId,omitempty" validate:"omitempty,gt=0"`

	// Populated via JOIN (not stored in artists table)
	ManagerName string `json:"managerName,omitempty"`
}
