package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"bookstore/models"

	"github.com/lib/pq"
)

type PostgresCatalogRepo struct {
	DB *sql.DB
}

func NewPostgresCatalogRepo(db *sql.DB) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{DB: db}
}

func (r *PostgresCatalogRepo) GetCategories() ([]*models.Category, error) {
	rows, err := r.DB.Query(`SELECT id, name, description FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCatalogRepo) GetCategoryByID(id string) (*models.Category, error) {
	c := &models.Category{}
	err := r.DB.QueryRow(`
		SELECT id, name, description FROM categories WHERE id=$1
	`, id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

const productColumns = `id, name, author, price, category_id, category, description, image_url, pages, published`

func (r *PostgresCatalogRepo) GetProductsByCategory(categoryID string) ([]*models.Product, error) {
	rows, err := r.DB.Query(
		`SELECT `+productColumns+` FROM products WHERE category_id=$1`, categoryID)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *PostgresCatalogRepo) GetProductByID(id string) (*models.Product, error) {
	p := &models.Product{}
	err := r.DB.QueryRow(
		`SELECT `+productColumns+` FROM products WHERE id=$1`, id).Scan(
		&p.ID, &p.Name, &p.Author, &p.Price, &p.CategoryID, &p.Category,
		&p.Description, &p.ImageURL, &p.Pages, &p.Published,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresCatalogRepo) GetProductsByIDs(ids []string) ([]*models.Product, error) {
	rows, err := r.DB.Query(
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *PostgresCatalogRepo) UpdateProduct(id string, upd *models.ProductUpdate) (bool, error) {
	sets := []string{}
	args := []interface{}{}

	if upd.Price != nil {
		args = append(args, *upd.Price)
		sets = append(sets, fmt.Sprintf("price=$%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if upd.ImageURL != nil {
		args = append(args, *upd.ImageURL)
		sets = append(sets, fmt.Sprintf("image_url=$%d", len(args)))
	}
	if len(sets) == 0 {
		// Nothing to change; still report whether the product exists.
		p, err := r.GetProductByID(id)
		return p != nil, err
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id=$%d",
		strings.Join(sets, ", "), len(args))

	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Author, &p.Price, &p.CategoryID, &p.Category,
			&p.Description, &p.ImageURL, &p.Pages, &p.Published,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
