package models

type Product struct {
	ID          string  `json:"id" db:"id" bson:"id"`
	Name        string  `json:"name" db:"name" bson:"name"`
	Author      string  `json:"author" db:"author" bson:"author"`
	Price       float64 `json:"price" db:"price" bson:"price"`
	CategoryID  string  `json:"categoryId" db:"category_id" bson:"category_id"`
	Category    string  `json:"category" db:"category" bson:"category"`
	Description string  `json:"description" db:"description" bson:"description"`
	ImageURL    string  `json:"imageUrl" db:"image_url" bson:"image_url"`
	Pages       int     `json:"pages" db:"pages" bson:"pages"`
	Published   int     `json:"published" db:"published" bson:"published"`
}

// ProductUpdate carries the fields an admin may change on a product.
// Nil fields are left untouched.
type ProductUpdate struct {
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}
