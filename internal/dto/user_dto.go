package dto

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
}

type DeactivateAccountRequest struct {
	Password string `json:"password"`
}

type ConvertToBusinessRequest struct {
	BusinessName string `json:"business_name"`
	TaxID        string `json:"tax_id"`
	Website      string `json:"website"`
	Description  string `json:"description"`
}

type BusinessApplicationRequest struct {
	BusinessName string `json:"business_name"`
	TaxID        string `json:"tax_id"`
	Website      string `json:"website"`
}
