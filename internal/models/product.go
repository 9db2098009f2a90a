package models

// Product type discriminator used by cart rows, purchases, taxes and comments.
const (
	ProductTypeCourse  = "course"
	ProductTypeEbook   = "ebook"
	ProductTypePackage = "package"
)
