package schema

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleSeller  Role = "seller"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

// User is the account record returned by the users/auth endpoints.
// VendorID and CourierID are role-specific linkage identifiers; at most one of
// them is expected to be set for a given account.
type User struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Telephone string `json:"telephone,omitempty"`
	Address   string `json:"address,omitempty"`
	VendorID  ID     `json:"vendorId,omitempty"`
	CourierID ID     `json:"courierId,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Telephone string `json:"telephone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// LoginResponse carries the bearer credential and a denormalized snapshot of
// the account it belongs to.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
