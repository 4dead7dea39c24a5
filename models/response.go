package models

// Response is the common envelope for detail and mutation endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// List envelopes keep the entity-named payload key the dashboard tables bind to

type BrandListResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Brands  []Brand `json:"brands"`
}

type VendorListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Vendors []Vendor `json:"vendors"`
}

type LocationListResponse struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Locations []Location `json:"locations"`
}

type AmbassadorListResponse struct {
	Success     bool               `json:"success"`
	Count       int                `json:"count"`
	Ambassadors []AmbassadorRecord `json:"ambassadors"`
}

type UserListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Users   []AppUser `json:"users"`
}

type InquiryListResponse struct {
	Success   bool      `json:"success"`
	Count     int       `json:"count"`
	Inquiries []Inquiry `json:"inquiries"`
}
