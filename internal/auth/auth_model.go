package auth

type RegisterRequest struct {
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=8"`
	Phone        string   `json:"phone" binding:"required"`
	Age          int      `json:"age" binding:"omitempty,gte=18,lte=100"`
	Gender       string   `json:"gender" binding:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
	Bio          string   `json:"bio" binding:"required"`
	ReasonToJoin string   `json:"reasonToJoin" binding:"required"`
	Community    string   `json:"community"`
	Interests    []string `json:"interests"`
	Instagram    string   `json:"instagram"`
	Facebook     string   `json:"facebook"`
	Youtube      string   `json:"youtube"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Token          string `json:"token"`
}
