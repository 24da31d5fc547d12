package domain

// User is a back-office administrator. The public booking site is anonymous;
// only admin CRUD routes authenticate.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
