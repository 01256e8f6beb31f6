package medication

// Prescription is one medication order inside a patient's history.
type Prescription struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"patient_id"`
	PractitionerID int    `json:"practitioner_id"`
	Medication     string `json:"medication"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	IssuedOn       string `json:"issued_on"`
}

// History groups every prescription for one patient. Its record id IS the
// patient id: the collection is keyed by the grouping key, not by a
// surrogate of its own.
type History struct {
	PatientID     int             `json:"patient_id"`
	Prescriptions []*Prescription `json:"prescriptions"`
}

// GetID returns the grouping key (the patient id).
func (h *History) GetID() int { return h.PatientID }

// SetID sets the grouping key.
func (h *History) SetID(v int) { h.PatientID = v }
