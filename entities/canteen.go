package entities

type Canteen struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	ContactEmail   string            `json:"contact_email"`
	ContactPhone   string            `json:"contact_phone"`
	OperatingHours map[string]string `json:"operating_hours"`
}

func (c Canteen) Clone() Canteen {
	out := c
	if c.OperatingHours != nil {
		out.OperatingHours = make(map[string]string, len(c.OperatingHours))
		for day, hours := range c.OperatingHours {
			out.OperatingHours[day] = hours
		}
	}
	return out
}
