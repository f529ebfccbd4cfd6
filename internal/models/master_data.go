package models

import (
	"encoding/json"
	"time"
)

// MasterKind describes one of the reference tables products point at.
type MasterKind struct {
	Table      string // also the JSON key of list responses
	NameColumn string // also the JSON key of the name field
	Singular   string
	Label      string
}

var (
	Warehouses = MasterKind{Table: "warehouses", NameColumn: "name", Singular: "warehouse", Label: "Warehouse"}
	Categories = MasterKind{Table: "categories", NameColumn: "category_name", Singular: "category", Label: "Category"}
	Brands     = MasterKind{Table: "brands", NameColumn: "brand_name", Singular: "brand", Label: "Brand"}

	MasterKinds = []MasterKind{Warehouses, Categories, Brands}
)

// MasterRecord is a warehouse, category or brand. It renders its name under
// the column name of its kind, e.g. {"id":1,"category_name":"Toys"}.
type MasterRecord struct {
	Kind      MasterKind `db:"-" json:"-"`
	ID        int        `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (m MasterRecord) MarshalJSON() ([]byte, error) {
	nameKey := m.Kind.NameColumn
	if nameKey == "" {
		nameKey = "name"
	}
	return json.Marshal(map[string]any{
		"id":         m.ID,
		nameKey:      m.Name,
		"created_at": m.CreatedAt,
		"updated_at": m.UpdatedAt,
	})
}
