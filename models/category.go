package models

type Category struct {
	ID          string `json:"id" db:"id" bson:"id"`
	Name        string `json:"name" db:"name" bson:"name"`
	Description string `json:"description" db:"description" bson:"description"`
}
