package patient

// Patient maps to one entry of the patients collection. Dates and phone
// numbers are kept as the strings the caller supplied; the core does not
// parse or normalize them.
type Patient struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	BirthDate   string   `json:"birth_date"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Allergies   []string `json:"allergies"`
	Medications []string `json:"medications"`
	Conditions  []string `json:"conditions"`
}

// GetID returns the surrogate id.
func (p *Patient) GetID() int { return p.ID }

// SetID sets the surrogate id.
func (p *Patient) SetID(v int) { p.ID = v }
