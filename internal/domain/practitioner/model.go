package practitioner

// Practitioner maps to one entry of the doctors collection.
type Practitioner struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// GetID returns the surrogate id.
func (p *Practitioner) GetID() int { return p.ID }

// SetID sets the surrogate id.
func (p *Practitioner) SetID(v int) { p.ID = v }
