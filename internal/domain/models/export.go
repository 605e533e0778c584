package models

import (
	"encoding/json"
	"time"
)

// ExportRecord represents one finished workbook export stored in MongoDB.
type ExportRecord struct {
	Path             string    `bson:"path" json:"path"`
	ReferencePath    string    `bson:"reference_path" json:"reference_path"`
	Mode             string    `bson:"mode" json:"mode"`
	Rows             int       `bson:"rows" json:"rows"`
	MissingStopovers int       `bson:"missing_stopovers" json:"missing_stopovers"`
	Duration         string    `bson:"duration" json:"duration"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// ExportRequest is the payload accepted by the HTTP export endpoint.
type ExportRequest struct {
	Routes        json.RawMessage `json:"routes" binding:"required"`
	ReferencePath string          `json:"reference_path" binding:"required"`
	Mode          string          `json:"mode"`
}

// ExportResponse is returned to callers once the workbook is persisted.
type ExportResponse struct {
	Path             string `json:"path"`
	Mode             string `json:"mode"`
	Rows             int    `json:"rows"`
	MissingStopovers int    `json:"missing_stopovers"`
}
