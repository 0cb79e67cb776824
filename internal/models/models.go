package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"  json:"id"`
	Email          string     `gorm:"uniqueIndex;not null"  json:"email"`
	FullName       string     `json:"fullName"`
	BusinessName   string     `json:"businessName"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	PasswordHash   string     `gorm:"not null"              json:"-"`
	UserType       string     `gorm:"not null"              json:"userType"`
	SavedThisMonth float64    `gorm:"default:0"             json:"savedThisMonth"`
	SupplierID     *uuid.UUID `gorm:"type:uuid"             json:"supplierId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name        string    `gorm:"not null"              json:"name"`
	Distance    string    `json:"distance"`
	Rating      float64   `gorm:"default:0"             json:"rating"`
	Verified    bool      `gorm:"default:false"         json:"verified"`
	Specialties []string  `gorm:"serializer:json"       json:"specialties"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// GroupOrder is a bounded-capacity pooled purchase. CurrentMembers only ever
// moves up by one per join and must never pass MaxMembers.
type GroupOrder struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	Title          string    `gorm:"not null"                   json:"title"`
	TotalItems     int       `gorm:"not null"                   json:"totalItems"`
	CurrentMembers int       `gorm:"not null;default:0"         json:"currentMembers"`
	MaxMembers     int       `gorm:"not null;check:max_members > 0" json:"maxMembers"`
	Deadline       string    `json:"deadline"`
	Savings        string    `json:"savings"`
	SupplierID     uuid.UUID `gorm:"type:uuid;index;not null"   json:"supplierId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (g *GroupOrder) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GroupOrderRequest is a vendor's ask that a supplier host a group order.
// Distinct from GroupOrder: requests carry an accept/reject status and no
// member capacity.
type GroupOrderRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Title        string    `gorm:"not null"                 json:"title"`
	Requester    string    `json:"requester"`
	Items        int       `json:"items"`
	TotalValue   float64   `json:"totalValue"`
	Participants int       `json:"participants"`
	Status       string    `gorm:"not null;default:pending" json:"status"`
	Deadline     string    `json:"deadline"`
	SupplierID   uuid.UUID `gorm:"type:uuid;index;not null" json:"supplierId"`
	Supplier     *Supplier `gorm:"foreignKey:SupplierID"    json:"supplier,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (g *GroupOrderRequest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Name       string    `gorm:"not null"                 json:"name"`
	Category   string    `gorm:"not null"                 json:"category"`
	Price      float64   `gorm:"not null"                 json:"price"`
	Unit       string    `gorm:"not null"                 json:"unit"`
	Stock      int       `json:"stock"`
	Status     string    `gorm:"not null"                 json:"status"`
	SupplierID uuid.UUID `gorm:"type:uuid;index;not null" json:"supplierId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

const (
	ProductAvailable  = "available"
	ProductLowStock   = "low_stock"
	ProductOutOfStock = "out_of_stock"
)

type OrderTracking struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string      `json:"title"`
	Supplier          string      `json:"supplier"`
	Status            string      `gorm:"not null"             json:"status"`
	OrderDate         string      `json:"orderDate"`
	EstimatedDelivery string      `json:"estimatedDelivery"`
	SupplierPhone     string      `json:"supplierPhone"`
	SupplierAddress   string      `json:"supplierAddress"`
	TotalAmount       float64     `json:"totalAmount"`
	Items             []OrderItem `gorm:"foreignKey:OrderTrackingID" json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
}

func (o *OrderTracking) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	OrderTrackingID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	Unit            string    `json:"unit"`
	Price           float64   `json:"price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
