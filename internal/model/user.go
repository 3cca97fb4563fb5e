package model

type Role string

const (
	// RoleHost is the first user of the instance and can do everything.
	RoleHost  Role = "HOST"
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedTs    int64  `json:"createdTs"`
}

type FindUser struct {
	ID       *int    `json:"id"`
	Username *string `json:"username"`
	Role     *Role   `json:"role"`
}

type UserSignupRequest struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type UserSigninRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NeverExpire bool   `json:"neverExpire"`
}
