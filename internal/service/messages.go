// Package service implements the mutation pipelines behind the forms:
// validate, enforce uniqueness, compute derived fields, persist, and
// signal stale views. Persistence is delegated to repository interfaces
// declared by each pipeline.
package service

// Messages surfaced to callers. Wording matches the dashboard UI.
const (
	MsgPlotCreated           = "Plot created successfully."
	MsgPlotUpdated           = "Plot updated successfully."
	MsgPlotDeleted           = "Plot deleted successfully."
	MsgUserCreated           = "User created successfully."
	MsgUserDeleted           = "User deleted successfully."
	MsgPasswordChanged       = "Password changed successfully."
	MsgInquirySubmitted      = "Inquiry submitted successfully."
	MsgContactCreated        = "Contact created successfully."
	MsgContactUpdated        = "Contact updated successfully."
	MsgContactDeleted        = "Contact deleted successfully."
	MsgRegistrationSubmitted = "Thank you for registering! We will contact you shortly."

	MsgInvalidCredentials = "Invalid email or password."
	MsgUserExists         = "A user with this email already exists."
	MsgUserNotFound       = "User not found."
	MsgPlotExists         = "A plot with this number already exists in the same village."
	MsgPlotExistsOther    = "Another plot with this number already exists in the same village."
	MsgPlotNotFound       = "Plot not found."
	MsgContactExists      = "A contact with this email already exists."
	MsgContactExistsOther = "Another contact with this email already exists."
	MsgContactNotFound    = "Contact not found."
	MsgRegistrationExists = "This email address has already been registered."
	MsgInvalidInput       = "Invalid input data."

	msgPlotCheckFieldsCreate = "Failed to create plot. Please check all text fields."
	msgPlotCheckFieldsUpdate = "Failed to update plot. Please check all text fields."
	msgPlotImageInvalid      = "Image validation failed. Please provide a valid image file."
	msgPlotImageUpdate       = "Image validation failed."
	msgUserCheckFields       = "Failed to create user."
	msgContactCreateFields   = "Failed to create contact."
	msgContactUpdateFields   = "Failed to update contact."
	msgRegistrationFields    = "Failed to submit registration. Please check the fields."

	msgOwnerPasswordLocked = "The owner password cannot be changed from the dashboard."
	msgNoStoredPassword    = "No password set for this user."
	msgWrongCurrent        = "Current password is incorrect."
)

// ViewInvalidator signals that dependent rendered views are stale.
// Signals are fire-and-forget and idempotent.
type ViewInvalidator interface {
	Invalidate(paths ...string)
}
