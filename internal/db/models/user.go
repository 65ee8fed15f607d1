package models

import "time"

type User struct {
	ID        int64     `json:"id" pg:",pk"`
	Name      string    `json:"name" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
