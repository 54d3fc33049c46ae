package models

type CartItem struct {
	ProductID string  `json:"productId" db:"product_id" bson:"product_id"`
	Name      string  `json:"name" db:"name" bson:"name"`
	Author    string  `json:"author" db:"author" bson:"author"`
	Price     float64 `json:"price" db:"price" bson:"price"`
	Quantity  int     `json:"quantity" db:"quantity" bson:"quantity"`
	ImageURL  string  `json:"imageUrl" db:"image_url" bson:"image_url"`
}
