package produce

import "testing"

func TestNewItem(t *testing.T) {
	testCases := []struct {
		name      string
		itemName  string
		quantity  int64
		price     Money
		category  string
		unit      string
		wantErr   bool
		wantCat   string
		wantUnit  string
		wantName  string
	}{
		{
			name:     "defaults applied",
			itemName: "Tomato",
			quantity: 50,
			price:    M(1.5),
			wantCat:  DefaultCategory,
			wantUnit: DefaultUnit,
			wantName: "Tomato",
		},
		{
			name:     "explicit category and unit",
			itemName: "Carrot",
			quantity: 30,
			price:    M(1.0),
			category: "Root Vegetables",
			unit:     "kg",
			wantCat:  "Root Vegetables",
			wantUnit: "kg",
			wantName: "Carrot",
		},
		{
			name:     "name is trimmed",
			itemName: "  Onion  ",
			quantity: 5,
			price:    M(2.0),
			wantCat:  DefaultCategory,
			wantUnit: DefaultUnit,
			wantName: "Onion",
		},
		{
			name:     "empty name rejected",
			itemName: "   ",
			quantity: 5,
			price:    M(2.0),
			wantErr:  true,
		},
		{
			name:     "negative quantity rejected",
			itemName: "Pepper",
			quantity: -1,
			price:    M(0.75),
			wantErr:  true,
		},
		{
			name:     "negative price rejected",
			itemName: "Pepper",
			quantity: 1,
			price:    M(-0.75),
			wantErr:  true,
		},
		{
			name:     "zero quantity and price are valid",
			itemName: "Pepper",
			quantity: 0,
			price:    M(0),
			wantCat:  DefaultCategory,
			wantUnit: DefaultUnit,
			wantName: "Pepper",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := NewItem(tc.itemName, tc.quantity, tc.price, tc.category, tc.unit)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewItem(%q) expected an error, got none", tc.itemName)
				}
				if !IsValidation(err) {
					t.Errorf("NewItem(%q) error = %v, want a ValidationError", tc.itemName, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewItem(%q) returned an unexpected error: %v", tc.itemName, err)
			}
			if item.Name() != tc.wantName {
				t.Errorf("Name() = %q, want %q", item.Name(), tc.wantName)
			}
			if item.Category() != tc.wantCat {
				t.Errorf("Category() = %q, want %q", item.Category(), tc.wantCat)
			}
			if item.Unit() != tc.wantUnit {
				t.Errorf("Unit() = %q, want %q", item.Unit(), tc.wantUnit)
			}
		})
	}
}

func TestItem_Setters(t *testing.T) {
	item, err := NewItem("Carrot", 50, M(2.0), "", "")
	if err != nil {
		t.Fatalf("NewItem returned an unexpected error: %v", err)
	}

	if err := item.SetQuantity(80); err != nil {
		t.Fatalf("SetQuantity(80) returned an unexpected error: %v", err)
	}
	if got := item.Quantity(); got != 80 {
		t.Errorf("Quantity() = %d, want 80", got)
	}

	if err := item.SetPrice(M(2.5)); err != nil {
		t.Fatalf("SetPrice(2.5) returned an unexpected error: %v", err)
	}
	if got := item.Price(); !got.Equal(M(2.5)) {
		t.Errorf("Price() = %s, want $2.50", got)
	}

	// Rejected mutations must leave the item untouched.
	if err := item.SetQuantity(-1); err == nil {
		t.Error("SetQuantity(-1) expected an error, got none")
	}
	if got := item.Quantity(); got != 80 {
		t.Errorf("Quantity() after rejected set = %d, want 80", got)
	}
	if err := item.SetPrice(M(-2.5)); err == nil {
		t.Error("SetPrice(-2.5) expected an error, got none")
	}
	if got := item.Price(); !got.Equal(M(2.5)) {
		t.Errorf("Price() after rejected set = %s, want $2.50", got)
	}
}

func TestItem_Value(t *testing.T) {
	item, err := NewItem("Pepper", 20, M(0.75), "", "")
	if err != nil {
		t.Fatalf("NewItem returned an unexpected error: %v", err)
	}
	if got, want := item.Value(), M(15.0); !got.Equal(want) {
		t.Errorf("Value() = %s, want %s", got, want)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Tomato", "tomato"},
		{"  ToMaTo  ", "tomato"},
		{"RED onion", "red onion"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
