package warehouse

// Farmer is a supplier record. It is immutable after creation; updating a
// farmer replaces the whole record under the same id.
type Farmer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}

// NewFarmer validates every field and constructs a Farmer. The id is assigned
// by the owning Warehouse, never by the caller.
func NewFarmer(id int, name, phone, email, city string) (Farmer, error) {
	if err := validateName(name); err != nil {
		return Farmer{}, err
	}
	if err := validatePhone(phone); err != nil {
		return Farmer{}, err
	}
	if err := validateEmail(email); err != nil {
		return Farmer{}, err
	}
	if err := validateCity(city); err != nil {
		return Farmer{}, err
	}
	return Farmer{ID: id, Name: name, Phone: phone, Email: email, City: city}, nil
}

// MarshalJSON keeps the snapshot field order deterministic.
func (f Farmer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", f.ID)
	w.Append("name", f.Name)
	w.Append("phone", f.Phone)
	w.Append("email", f.Email)
	w.Append("city", f.City)
	return w.MarshalJSON()
}
