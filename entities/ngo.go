package entities

type NGO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactPerson  string `json:"contact_person"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	CapacityPerDay int    `json:"capacity_per_day"`
}
