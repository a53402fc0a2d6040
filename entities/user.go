package entities

type Role string

const (
	RoleStaff     Role = "staff"
	RoleStudent   Role = "student"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	CanteenID    string `json:"canteen_id,omitempty"`
	NGOID        string `json:"ngo_id,omitempty"`
	PasswordHash []byte `json:"-"`
}
