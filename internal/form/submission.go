package form

// ContactSubmission is the payload posted to /api/contact.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// OrderSubmission is the payload posted to /api/orders. Email and Notes are
// optional and default to "".
type OrderSubmission struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	ProductType  string `json:"productType"`
	Quantity     string `json:"quantity"`
	DeliveryTime string `json:"deliveryTime"`
	DeliveryDate string `json:"deliveryDate"`
	Notes        string `json:"notes"`
}

// ContactFrom extracts a ContactSubmission from the form's current values.
// Values are taken as entered; absent fields become "".
func ContactFrom(f *Form) ContactSubmission {
	return ContactSubmission{
		Name:    f.Get("name"),
		Email:   f.Get("email"),
		Phone:   f.Get("phone"),
		Subject: f.Get("subject"),
		Message: f.Get("message"),
	}
}

// OrderFrom extracts an OrderSubmission from the form's current values.
func OrderFrom(f *Form) OrderSubmission {
	return OrderSubmission{
		Name:         f.Get("name"),
		Mobile:       f.Get("mobile"),
		Email:        f.Get("email"),
		Address:      f.Get("address"),
		ProductType:  f.Get("productType"),
		Quantity:     f.Get("quantity"),
		DeliveryTime: f.Get("deliveryTime"),
		DeliveryDate: f.Get("deliveryDate"),
		Notes:        f.Get("notes"),
	}
}
