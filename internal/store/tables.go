package store

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-message-keeper/models"
)

// Table names an entity table and the columns builders may reference.
// Columns are listed in scan order.
type Table struct {
	Name    string
	Columns []string
}

func (t Table) has(column string) bool {
	return slices.Contains(t.Columns, column)
}

func (t Table) columnList() string {
	return strings.Join(t.Columns, ", ")
}

var (
	UsersTable = Table{
		Name:    models.User{}.TableName(),
		Columns: []string{"id", "created_at", "flags", "username", "password_hash"},
	}
	DevicesTable = Table{
		Name:    models.Device{}.TableName(),
		Columns: []string{"id", "is_required_viewer", "name", "access", "user_id"},
	}
	MessagesTable = Table{
		Name:    models.Message{}.TableName(),
		Columns: []string{"id", "created_at", "expire_at", "is_transient", "text", "title", "user_id"},
	}
	FilesTable = Table{
		Name:    models.File{}.TableName(),
		Columns: []string{"content_type", "file_name", "message_id", "set_at"},
	}
	ViewsTable = Table{
		Name:    models.View{}.TableName(),
		Columns: []string{"created_at", "device_id", "message_id"},
	}
	MessageLinksTable = Table{
		Name:    models.MessageLink{}.TableName(),
		Columns: []string{"token", "message_id", "access", "resource", "expires_at"},
	}
	PermissionsTable = Table{
		Name:    models.Permission{}.TableName(),
		Columns: []string{"message_id", "user_id", "permissions"},
	}
)
