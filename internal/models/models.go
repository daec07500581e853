package models

import "time"

// Role values a user can hold. A fresh registration has no role until the
// user picks one on the select-type step.
const (
	RoleUnset   = ""
	RoleTendero = "tendero"
	RoleCliente = "cliente"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EmailKey     string `gorm:"uniqueIndex;not null"     json:"-"`
	Email        string `gorm:"not null"                 json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	UserID       string `gorm:"not null"                 json:"user_id"`
	Role         string `json:"role"`
}

type Store struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID string `gorm:"uniqueIndex;not null"     json:"local_id"`
	Name    string `gorm:"not null"                 json:"nombre"`
	OwnerID string `gorm:"index;not null"           json:"propietario_id"`
}

type Product struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                    json:"id"`
	StoreID   string  `gorm:"index:idx_store_product,unique;not null"     json:"local_id"`
	ProductID string  `gorm:"index:idx_store_product,unique;not null"     json:"producto_id"`
	Name      string  `gorm:"not null"                                    json:"nombre"`
	Price     float64 `gorm:"not null"                                    json:"precio"`
	Stock     uint    `json:"stock"`
}

type Customer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"                 json:"id"`
	StoreID    string `gorm:"index:idx_store_customer,unique;not null" json:"local_id"`
	CustomerID string `gorm:"index:idx_store_customer,unique;not null" json:"cliente_id"`
	Name       string `json:"nombre"`
	Phone      string `json:"telefono"`
}

type Debt struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID    string    `gorm:"index;not null"           json:"local_id"`
	CustomerID string    `gorm:"index;not null"           json:"cliente_id"`
	Amount     float64   `gorm:"not null"                 json:"monto"`
	TermDays   *int      `json:"plazo_dias,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
