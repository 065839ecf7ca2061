package api

import (
	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/logbook"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// DocumentInfo describes the open log
type DocumentInfo struct {
	Title        string      `json:"title"`
	Path         string      `json:"path,omitempty"`
	Modified     bool        `json:"modified"`
	Header       string      `json:"header"`
	HeaderFields adif.Record `json:"header_fields"`
	Count        int         `json:"count"`
}

// RecordsResponse is a page of rows after filtering and sorting
type RecordsResponse struct {
	Rows  []logbook.Row `json:"rows"`
	Count int           `json:"count"`
	Total int           `json:"total"`
}

// ValidateRequest asks whether value is acceptable for field
type ValidateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// CellRequest is the body of a cell commit
type CellRequest struct {
	Value string `json:"value"`
}

// CellResponse reports a committed cell
type CellResponse struct {
	ID    string `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// DeleteRequest lists the rows to remove
type DeleteRequest struct {
	IDs []string `json:"ids"`
}

// PathRequest names a file on the server's filesystem
type PathRequest struct {
	Path string `json:"path"`
}

// FileResponse reports the outcome of an open or save
type FileResponse struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}
