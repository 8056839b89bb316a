package domain

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
}
