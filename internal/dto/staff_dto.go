package dto

type CreateTicketRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateTicketRequest struct {
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}

type ReportListingRequest struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
	Reason   string `json:"reason"`
}

type ReviewRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type CreateStaffRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	IsSuperStaff bool   `json:"is_super_staff"`
}
