package dto

// PinLoginRequest authenticates an employee by store + PIN. Verification
// happens in the database (verify_employee_pin); the PIN never touches disk.
type PinLoginRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	Pin     string `json:"pin"      validate:"required,len=4,numeric"`
}

type PinLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Employee    string `json:"employee"`
	Role        string `json:"role"`
}

type StoreResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Active  bool    `json:"active"`
}
