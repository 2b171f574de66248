package staff

type StaffResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func ToStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:     s.ID,
		Name:   s.Name,
		Active: s.Active,
	}
}
