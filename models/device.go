package models

import "github.com/google/uuid"

// Device is a named client of a user. A device flagged as a required
// viewer is expected to view every message of its owner.
type Device struct {
	ID               int64        `db:"id"`
	Name             string       `db:"name"`
	IsRequiredViewer bool         `db:"is_required_viewer"`
	Access           *Permissions `db:"access"`
	UserID           uuid.UUID    `db:"user_id"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}

func (d Device) ToResponse() DeviceResponse {
	return DeviceResponse{
		ID:               d.ID,
		Name:             d.Name,
		IsRequiredViewer: d.IsRequiredViewer,
		Access:           d.Access,
	}
}

type DeviceResponse struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	IsRequiredViewer bool         `json:"is_required_viewer"`
	Access           *Permissions `json:"access"`
}

type ReceivedDevice struct {
	Name             string       `json:"name"`
	IsRequiredViewer bool         `json:"is_required_viewer"`
	Access           *Permissions `json:"access"`
}

// DeviceUpdate is both the PATCH body and the storage-level patch.
type DeviceUpdate struct {
	Name             Optional[string]      `json:"name"`
	IsRequiredViewer Optional[bool]        `json:"is_required_viewer"`
	Access           Optional[Permissions] `json:"access"`
}
