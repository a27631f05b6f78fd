package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxTaxonomyDepth bounds the selection tree. Taxonomy entries are authored
// data (Settings > Manage Room Types), so a runaway nesting chain is an
// authoring error that must be rejected at load time instead of looping the
// selection flow forever.
const maxTaxonomyDepth = 8

// ProductType is one selectable node in the product taxonomy.
// A node with SubProducts is a branch that forces a follow-up selection;
// a node without SubProducts is a leaf that carries units and defaults.
type ProductType struct {
	Name         string        `json:"name"`
	DefaultPrice float64       `json:"default_price"`
	DefaultWages float64       `json:"default_wages"`
	Units        []string      `json:"units,omitempty"`
	SubProducts  []ProductType `json:"sub_products,omitempty"`
}

// IsLeaf reports whether the node terminates the selection descent.
func (p ProductType) IsLeaf() bool {
	return len(p.SubProducts) == 0
}

// RoomType is the root of one taxonomy tree (Kitchen, Bedroom, ...).
type RoomType struct {
	Name     string        `json:"name"`
	Products []ProductType `json:"products"`
}

// FindByPath descends the room type's product tree following the given
// selection path of node names. It returns the node at the end of the path.
func (rt RoomType) FindByPath(path []string) (ProductType, error) {
	if len(path) == 0 {
		return ProductType{}, fmt.Errorf("empty selection path for room type %q", rt.Name)
	}

	nodes := rt.Products
	var current ProductType
	for i, name := range path {
		found := false
		for _, n := range nodes {
			if n.Name == name {
				current = n
				found = true
				break
			}
		}
		if !found {
			return ProductType{}, fmt.Errorf("room type %q has no product %q under %q",
				rt.Name, name, strings.Join(path[:i], " / "))
		}
		nodes = current.SubProducts
	}

	if !current.IsLeaf() {
		return ProductType{}, fmt.Errorf("selection path %q ends on a branch, a sub-product must be chosen",
			strings.Join(path, " / "))
	}
	return current, nil
}

// ResolveUnits returns the unit options of the leaf at the selection path.
// A leaf without authored units yields an empty list; the caller must then
// require a manually typed unit before accepting a quantity.
func (rt RoomType) ResolveUnits(path []string) ([]string, error) {
	leaf, err := rt.FindByPath(path)
	if err != nil {
		return nil, err
	}
	return leaf.Units, nil
}

// LineItemName synthesizes the display name of a line item from the room
// type and the full selection path.
func LineItemName(roomType string, path []string) string {
	parts := append([]string{roomType}, path...)
	return strings.Join(parts, " ")
}

// CategoryOf returns the top-level category of a selection path.
func CategoryOf(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[0]
}

// SubcategoryOf returns the sub-category portion of a selection path,
// joined with " / ". Empty when the category itself is the leaf.
func SubcategoryOf(path []string) string {
	if len(path) <= 1 {
		return ""
	}
	return strings.Join(path[1:], " / ")
}

// Validate checks one room type tree: non-empty names, unique sibling names
// and bounded depth.
func (rt RoomType) Validate() error {
	if strings.TrimSpace(rt.Name) == "" {
		return fmt.Errorf("room type name is required")
	}
	return validateLevel(rt.Name, rt.Products, 1)
}

func validateLevel(roomType string, nodes []ProductType, depth int) error {
	if depth > maxTaxonomyDepth {
		return fmt.Errorf("room type %q exceeds max taxonomy depth %d (authoring cycle?)", roomType, maxTaxonomyDepth)
	}
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if strings.TrimSpace(n.Name) == "" {
			return fmt.Errorf("room type %q has a product with an empty name", roomType)
		}
		if seen[n.Name] {
			return fmt.Errorf("room type %q has duplicate product %q at the same level", roomType, n.Name)
		}
		seen[n.Name] = true
		if err := validateLevel(roomType, n.SubProducts, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// ParseRoomType decodes a room type tree from its stored JSON form.
// The tree is validated before being returned.
func ParseRoomType(name string, productsJSON []byte) (RoomType, error) {
	rt := RoomType{Name: name}
	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &rt.Products); err != nil {
			return RoomType{}, fmt.Errorf("room type %q has invalid products JSON: %w", name, err)
		}
	}
	if err := rt.Validate(); err != nil {
		return RoomType{}, err
	}
	return rt, nil
}

// EncodeProducts encodes a product tree for storage on a room_types record.
func EncodeProducts(products []ProductType) (string, error) {
	data, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("encode products: %w", err)
	}
	return string(data), nil
}

// EncodeTaxonomy encodes the whole catalog as JSON for embedding in the
// room capture form, where the selection widget walks it client-side.
func EncodeTaxonomy(roomTypes []RoomType) (string, error) {
	data, err := json.Marshal(roomTypes)
	if err != nil {
		return "", fmt.Errorf("encode taxonomy: %w", err)
	}
	return string(data), nil
}
