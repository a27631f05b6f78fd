package services

import (
	"reflect"
	"testing"
)

func kitchenFixture() RoomType {
	return RoomType{
		Name: "Kitchen",
		Products: []ProductType{
			{
				Name: "Counter Top Bottom",
				SubProducts: []ProductType{
					{
						Name: "Front Door",
						SubProducts: []ProductType{
							{Name: "Single Sheet", DefaultPrice: 50, DefaultWages: 10, Units: []string{"Sq.ft"}},
							{Name: "Double Sheet", DefaultPrice: 80, DefaultWages: 15, Units: []string{"Sq.ft"}},
						},
					},
					{Name: "Carcass", DefaultPrice: 45, DefaultWages: 12, Units: []string{"Sq.ft"}},
				},
			},
			{Name: "Handles", DefaultPrice: 150, DefaultWages: 20, Units: []string{"Nos"}},
			{Name: "Custom Work", DefaultPrice: 0, DefaultWages: 0},
		},
	}
}

func TestFindByPath_NestedLeaf(t *testing.T) {
	rt := kitchenFixture()
	path := []string{"Counter Top Bottom", "Front Door", "Single Sheet"}

	leaf, err := rt.FindByPath(path)
	if err != nil {
		t.Fatalf("FindByPath: %v", err)
	}
	if leaf.DefaultPrice != 50 || leaf.DefaultWages != 10 {
		t.Errorf("leaf defaults = %v/%v, want 50/10", leaf.DefaultPrice, leaf.DefaultWages)
	}
	if got := CategoryOf(path); got != "Counter Top Bottom" {
		t.Errorf("CategoryOf = %q, want %q", got, "Counter Top Bottom")
	}
	if got := SubcategoryOf(path); got != "Front Door / Single Sheet" {
		t.Errorf("SubcategoryOf = %q, want %q", got, "Front Door / Single Sheet")
	}
}

func TestFindByPath_Errors(t *testing.T) {
	rt := kitchenFixture()

	if _, err := rt.FindByPath(nil); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := rt.FindByPath([]string{"Counter Top Bottom", "Back Door"}); err == nil {
		t.Error("expected error for unknown node")
	}
	// Stopping on a branch must force a follow-up selection.
	if _, err := rt.FindByPath([]string{"Counter Top Bottom", "Front Door"}); err == nil {
		t.Error("expected error when path ends on a branch")
	}
}

func TestResolveUnits(t *testing.T) {
	rt := kitchenFixture()

	units, err := rt.ResolveUnits([]string{"Handles"})
	if err != nil {
		t.Fatalf("ResolveUnits: %v", err)
	}
	if !reflect.DeepEqual(units, []string{"Nos"}) {
		t.Errorf("units = %v, want [Nos]", units)
	}

	// A leaf without authored units resolves to an empty list.
	units, err = rt.ResolveUnits([]string{"Custom Work"})
	if err != nil {
		t.Fatalf("ResolveUnits: %v", err)
	}
	if len(units) != 0 {
		t.Errorf("units = %v, want empty", units)
	}
}

func TestLineItemName(t *testing.T) {
	got := LineItemName("Kitchen", []string{"Counter Top Bottom", "Front Door", "Single Sheet"})
	want := "Kitchen Counter Top Bottom Front Door Single Sheet"
	if got != want {
		t.Errorf("LineItemName = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := kitchenFixture().Validate(); err != nil {
		t.Errorf("valid tree rejected: %v", err)
	}

	dup := RoomType{Name: "Kitchen", Products: []ProductType{{Name: "Handles"}, {Name: "Handles"}}}
	if err := dup.Validate(); err == nil {
		t.Error("expected duplicate sibling names to be rejected")
	}

	unnamed := RoomType{Name: "Kitchen", Products: []ProductType{{Name: "  "}}}
	if err := unnamed.Validate(); err == nil {
		t.Error("expected empty product name to be rejected")
	}

	if err := (RoomType{Name: ""}).Validate(); err == nil {
		t.Error("expected empty room type name to be rejected")
	}
}

func TestValidate_RejectsRunawayNesting(t *testing.T) {
	node := ProductType{Name: "Leaf", Units: []string{"Nos"}}
	for i := 0; i < maxTaxonomyDepth+1; i++ {
		node = ProductType{Name: "Level", SubProducts: []ProductType{node}}
	}
	rt := RoomType{Name: "Kitchen", Products: []ProductType{node}}
	if err := rt.Validate(); err == nil {
		t.Error("expected over-deep tree to be rejected")
	}
}

func TestParseRoomType_RoundTrip(t *testing.T) {
	rt := kitchenFixture()
	encoded, err := EncodeProducts(rt.Products)
	if err != nil {
		t.Fatalf("EncodeProducts: %v", err)
	}

	parsed, err := ParseRoomType("Kitchen", []byte(encoded))
	if err != nil {
		t.Fatalf("ParseRoomType: %v", err)
	}
	if !reflect.DeepEqual(parsed, rt) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", parsed, rt)
	}
}

func TestParseRoomType_InvalidJSON(t *testing.T) {
	if _, err := ParseRoomType("Kitchen", []byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
