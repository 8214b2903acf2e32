package models

// UserInfo — сведения о владельце сессии (get_user_info).
type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
