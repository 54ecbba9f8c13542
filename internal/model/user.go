package model

import "time"

type UserID string

// User is the record managed by the users CRUD variant. Every field
// except UpdatedAt is required on create and update.
type User struct {
	ID                    UserID    `json:"id"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	GroupName             string    `json:"groupName"`
	Role                  string    `json:"role"`
	ExpectedSalary        float64   `json:"expectedSalary"`
	ExpectedDateOfDefense string    `json:"expectedDateOfDefense"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt,omitempty"`
}

// UserUpsert is the create/update request body for users.
type UserUpsert struct {
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	GroupName             string   `json:"groupName"`
	Role                  string   `json:"role"`
	ExpectedSalary        *float64 `json:"expectedSalary"`
	ExpectedDateOfDefense string   `json:"expectedDateOfDefense"`
}
