// Package validation holds the per-entity field schemas used by the
// mutation pipelines. Check evaluates every rule and accumulates all
// violations into a field-keyed message map, so a single response can
// report every defect at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field bounds shared by all schemas.
const (
	PasswordMinLength    = 8
	PasswordMaxLength    = 128
	PlotNumberMaxLength  = 50
	NameMaxLength        = 100
	EmailMaxLength       = 255
	PhoneMaxLength       = 20
	MessageMinLength     = 10
	MessageMaxLength     = 1000
	NotesMaxLength       = 500
	DescriptionMaxLength = 2000
	// ImageMaxSize is the upper bound for an uploaded plot image, 4 MiB.
	ImageMaxSize = 4 * 1024 * 1024
)

// Image validation messages.
const (
	MsgImageRequired = "An image file is required."
	MsgInvalidImage  = "Only image files are allowed."
	MsgImageTooLarge = "Image must be less than 4MB."
)

// PlotInput is the text-field payload for plot creation and update.
// The image travels separately as an ImageUpload.
type PlotInput struct {
	PlotNumber      string   `json:"plotNumber" validate:"required,max=50"`
	VillageName     string   `json:"villageName" validate:"required,max=100"`
	AreaName        string   `json:"areaName" validate:"required,max=100"`
	PlotSize        string   `json:"plotSize" validate:"required"`
	PlotFacing      string   `json:"plotFacing" validate:"required,oneof=North South East West North-East North-West South-East South-West"`
	Description     string   `json:"description" validate:"max=2000"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	PriceNegotiable bool     `json:"priceNegotiable"`
	Status          string   `json:"status" validate:"omitempty,oneof='Available' 'Reserved' 'Sold' 'Under Negotiation'"`
}

// UserInput is the payload for user creation.
type UserInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// PasswordInput validates a bare password against the strength bounds.
type PasswordInput struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// ContactInput is the payload for contact creation and update.
type ContactInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
	Email string `json:"email" validate:"required,email,max=255"`
	Type  string `json:"type" validate:"required,oneof=Seller Buyer"`
	Notes string `json:"notes" validate:"max=500"`
}

// RegistrationInput is the payload for the public registration form.
type RegistrationInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
	Email string `json:"email" validate:"required,email,max=255"`
	Notes string `json:"notes" validate:"max=500"`
}

// InquiryInput is the payload for the public contact-a-plot form.
type InquiryInput struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Message    string `json:"message" validate:"required,min=10,max=1000"`
	PlotNumber string `json:"plotNumber"`
}

// ImageUpload carries the raw bytes and declared media type of an
// uploaded plot image.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check evaluates every rule on in and returns all violations keyed by
// field name, or nil when the input is valid. A non-struct argument is
// a programmer error and panics.
func Check(in any) map[string][]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return fields
}

// CheckImage validates an uploaded image artifact. An empty upload
// short-circuits with the image-required message; otherwise the media
// type and size checks both run and their messages accumulate.
func CheckImage(img ImageUpload) []string {
	if len(img.Data) == 0 {
		return []string{MsgImageRequired}
	}
	var msgs []string
	if !strings.HasPrefix(img.ContentType, "image/") {
		msgs = append(msgs, MsgInvalidImage)
	}
	if len(img.Data) >= ImageMaxSize {
		msgs = append(msgs, MsgImageTooLarge)
	}
	return msgs
}

// CheckPassword validates a bare password against the strength bounds.
func CheckPassword(password string) []string {
	fields := Check(PasswordInput{Password: password})
	if fields == nil {
		return nil
	}
	return fields["password"]
}

var labels = map[string]string{
	"plotNumber":  "Plot number",
	"villageName": "Village name",
	"areaName":    "Area name",
	"plotSize":    "Plot size",
	"description": "Description",
	"name":        "Name",
	"phone":       "Phone",
	"notes":       "Notes",
	"email":       "Email",
	"password":    "Password",
	"message":     "Message",
	"price":       "Price",
	"status":      "Status",
}

// message renders a single violation as the human-readable text shown
// next to the field. Wording follows the original dashboard forms, so a
// few fields vary by schema.
func message(fe validator.FieldError) string {
	schema := strings.SplitN(fe.Namespace(), ".", 2)[0]

	switch fe.Field() {
	case "plotFacing":
		return "Please select a plot facing direction."
	case "type":
		return "Please select a contact type."
	case "status":
		return "Please select a valid status."
	case "email":
		switch {
		case fe.Tag() == "max":
			return fmt.Sprintf("Email must be less than %s characters.", fe.Param())
		case schema == "UserInput":
			return "Please enter a valid email address."
		case schema == "ContactInput":
			return "Please enter a valid email."
		default:
			return "A valid email is required."
		}
	case "password":
		if fe.Tag() == "max" {
			return fmt.Sprintf("Password must be less than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Password must be at least %d characters long.", PasswordMinLength)
	case "message":
		if fe.Tag() == "max" {
			return fmt.Sprintf("Message must be less than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Message must be at least %d characters.", MessageMinLength)
	case "phone":
		if fe.Tag() == "max" {
			return fmt.Sprintf("Phone must be less than %s characters.", fe.Param())
		}
		if schema == "RegistrationInput" {
			return "A valid phone number is required."
		}
		return "Phone number is required."
	case "price":
		return "Price must not be negative."
	}

	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		return fmt.Sprintf("%s must be less than %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	default:
		return label + " is invalid."
	}
}
