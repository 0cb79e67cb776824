package transport

import "github.com/google/uuid"

type SignupRequest struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Password     string `json:"password"`
	UserType     string `json:"userType"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateGroupOrderRequest struct {
	Title      string    `json:"title"`
	TotalItems int       `json:"totalItems"`
	MaxMembers int       `json:"maxMembers"`
	Deadline   string    `json:"deadline"`
	Savings    string    `json:"savings"`
	SupplierID uuid.UUID `json:"supplierId"`
}

// AddProductRequest carries the caller's *user* id in SupplierID; the backend
// resolves it to the linked supplier record.
type AddProductRequest struct {
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Unit       string    `json:"unit"`
	Stock      int       `json:"stock"`
	Status     string    `json:"status"`
	SupplierID uuid.UUID `json:"supplierId"`
}

// ActiveGroupOrder is the list projection for the vendor-facing feed: a
// GroupOrder row with the supplier name resolved.
type ActiveGroupOrder struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Supplier       string    `json:"supplier"`
	TotalItems     int       `json:"totalItems"`
	CurrentMembers int       `json:"currentMembers"`
	MaxMembers     int       `json:"maxMembers"`
	Deadline       string    `json:"deadline"`
	Savings        string    `json:"savings"`
}
