package models

// EmailRequest is one transactional message. OrderID travels as a SendGrid
// custom arg so bounces and opens can be traced back to the order.
type EmailRequest struct {
	To          string `validate:"required,email"`
	Subject     string `validate:"required"`
	Content     string `validate:"required"`
	HTMLContent string
	OrderID     string
	Categories  []string
}

const EmailCategoryLicenseDelivery = "license-delivery"
