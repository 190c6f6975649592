package models

// CustomerView adalah proyeksi read-only untuk rendering: entity + display name.
// Display name tidak pernah ditulis balik ke entity maupun ke database.
type CustomerView struct {
	Customer
	DisplayName string `json:"full_name"`
}

func NewCustomerView(c Customer) CustomerView {
	return CustomerView{Customer: c, DisplayName: c.FullName()}
}

// NewCustomerViews memetakan slice customer ke slice view, urutan dipertahankan
func NewCustomerViews(customers []Customer) []CustomerView {
	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, NewCustomerView(c))
	}
	return views
}
