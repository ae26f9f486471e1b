package models

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RoleViewer   UserRole = "viewer"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is an organization member managed through the admin panel.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"       validate:"required"`
	Email      string     `json:"email"      validate:"required,email"`
	Role       UserRole   `json:"role"       validate:"required,oneof=admin employee viewer"`
	Status     UserStatus `json:"status"     validate:"required,oneof=active inactive"`
	LastActive string     `json:"lastActive"`
}

// LLMSettings selects the generation provider for the organization.
type LLMSettings struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
}

// OrganizationSettings holds the management company profile used when
// signing generated replies.
type OrganizationSettings struct {
	Name               string `json:"name"`
	INN                string `json:"inn"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	AutoSignature      bool   `json:"autoSignature"`
	EmailNotifications bool   `json:"emailNotifications"`
}
