package billing

// Kind distinguishes catalog entries.
type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

// ProductOrService is one priced catalog entry.
type ProductOrService struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Kind  Kind    `json:"kind"`
	Price float64 `json:"price"`
}

// GetID returns the surrogate id.
func (p *ProductOrService) GetID() int { return p.ID }

// SetID sets the surrogate id.
func (p *ProductOrService) SetID(v int) { p.ID = v }

// Invoice maps to one entry of the invoices collection. The appointment
// reference is not validated on write. Total is the sum of the catalog
// prices matched by name and kind at generation time; consumed names with
// no catalog match contribute zero.
type Invoice struct {
	ID            int      `json:"id"`
	AppointmentID int      `json:"appointment_id"`
	Services      []string `json:"services"`
	Products      []string `json:"products"`
	Total         float64  `json:"total"`
}

// GetID returns the surrogate id.
func (i *Invoice) GetID() int { return i.ID }

// SetID sets the surrogate id.
func (i *Invoice) SetID(v int) { i.ID = v }
