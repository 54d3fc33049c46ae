package repository

import (
	"database/sql"

	"bookstore/models"
)

type PostgresCartRepo struct {
	DB *sql.DB
}

func NewPostgresCartRepo(db *sql.DB) *PostgresCartRepo {
	return &PostgresCartRepo{DB: db}
}

func (r *PostgresCartRepo) GetItems() ([]*models.CartItem, error) {
	rows, err := r.DB.Query(`
		SELECT product_id, name, author, price, quantity, image_url FROM cart_items
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.CartItem
	for rows.Next() {
		item := &models.CartItem{}
		if err := rows.Scan(
			&item.ProductID, &item.Name, &item.Author,
			&item.Price, &item.Quantity, &item.ImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresCartRepo) GetItem(productID string) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := r.DB.QueryRow(`
		SELECT product_id, name, author, price, quantity, image_url
		FROM cart_items WHERE product_id=$1
	`, productID).Scan(
		&item.ProductID, &item.Name, &item.Author,
		&item.Price, &item.Quantity, &item.ImageURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresCartRepo) AddItem(item *models.CartItem) error {
	_, err := r.DB.Exec(`
		INSERT INTO cart_items (product_id, name, author, price, quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ProductID, item.Name, item.Author, item.Price, item.Quantity, item.ImageURL)
	return err
}

func (r *PostgresCartRepo) IncrementQuantity(productID string, delta int) error {
	_, err := r.DB.Exec(`
		UPDATE cart_items SET quantity = quantity + $1 WHERE product_id=$2
	`, delta, productID)
	return err
}

func (r *PostgresCartRepo) SetQuantity(productID string, quantity int) error {
	_, err := r.DB.Exec(`
		UPDATE cart_items SET quantity=$1 WHERE product_id=$2
	`, quantity, productID)
	return err
}

func (r *PostgresCartRepo) RemoveItem(productID string) error {
	_, err := r.DB.Exec(`DELETE FROM cart_items WHERE product_id=$1`, productID)
	return err
}

func (r *PostgresCartRepo) Clear() error {
	_, err := r.DB.Exec(`DELETE FROM cart_items`)
	return err
}
