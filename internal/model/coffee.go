package model

import "time"

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

type User struct {
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Passcode  string    `json:"-" firestore:"passcode"`
	CreatedAt time.Time `json:"created_at,omitempty" firestore:"created_at,serverTimestamp"`
}

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"product_id"`
	Name      string  `json:"name" firestore:"name"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Price     float64 `json:"price" firestore:"price"`
}

type Order struct {
	Email      string      `json:"email" firestore:"email"`
	Items      []OrderItem `json:"items" firestore:"items"`
	TotalPrice float64     `json:"total_price" firestore:"total_price"`
	Timestamp  time.Time   `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
