package facet

import (
	domainerrors "storefront/internal/domain/errors"
)

// Draft is the filter modal's local state. Nothing leaves the draft until
// Apply is called; edits made while the draft is closed are ignored.
type Draft struct {
	open bool
	sel  Selection
}

// Open shows the modal and resynchronizes every field from the committed
// selection, dropping edits left over from an earlier session.
func (d *Draft) Open(current Selection) {
	d.sel = current.Normalized()
	d.open = true
}

// IsOpen reports whether the modal is showing.
func (d *Draft) IsOpen() bool {
	return d.open
}

// Selection returns the fields as currently edited.
func (d *Draft) Selection() Selection {
	return d.sel
}

// SelectCategory picks a top-level category. Picking a different category
// clears the subcategory; picking the active one clears both.
func (d *Draft) SelectCategory(categoryID string) {
	if !d.open {
		return
	}

	if d.sel.CategoryID == categoryID {
		d.sel.CategoryID = ""
		d.sel.SubCategoryID = ""

		return
	}

	d.sel.CategoryID = categoryID
	d.sel.SubCategoryID = ""
}

// ToggleSubCategory selects a subcategory, or clears it when already selected.
func (d *Draft) ToggleSubCategory(subCategoryID string) {
	if !d.open {
		return
	}

	d.sel.SubCategoryID = toggle(d.sel.SubCategoryID, subCategoryID)
}

// ToggleBrand selects a brand, or clears it when already selected.
func (d *Draft) ToggleBrand(brand string) {
	if !d.open {
		return
	}

	d.sel.Brand = toggle(d.sel.Brand, brand)
}

func (d *Draft) SetPriceRange(bucket string) {
	if d.open {
		d.sel.PriceRange = bucket
	}
}

func (d *Draft) SetRating(bucket string) {
	if d.open {
		d.sel.Rating = bucket
	}
}

func (d *Draft) SetInStock(inStock bool) {
	if d.open {
		d.sel.InStock = inStock
	}
}

// Reset restores every field to its default and keeps the modal open.
func (d *Draft) Reset() {
	if !d.open {
		return
	}

	d.sel = DefaultSelection(RouteParams{})
}

// Apply hands the edited selection to commit exactly once and closes the modal.
func (d *Draft) Apply(commit func(Selection)) {
	if !d.open {
		return
	}

	sel := d.sel
	d.open = false
	if commit != nil {
		commit(sel)
	}
}

// Close hides the modal without committing.
func (d *Draft) Close() {
	d.open = false
}

// ActionType names one modal interaction.
type ActionType string

const (
	ActionOpen              ActionType = "open"
	ActionSelectCategory    ActionType = "selectCategory"
	ActionToggleSubCategory ActionType = "toggleSubCategory"
	ActionToggleBrand       ActionType = "toggleBrand"
	ActionSetPriceRange     ActionType = "setPriceRange"
	ActionSetRating         ActionType = "setRating"
	ActionSetInStock        ActionType = "setInStock"
	ActionReset             ActionType = "reset"
	ActionApply             ActionType = "apply"
	ActionClose             ActionType = "close"
)

// Action is one modal interaction replayed by Dispatch.
type Action struct {
	Type    ActionType `json:"type" validate:"required"`
	Value   string     `json:"value,omitempty"`
	Enabled bool       `json:"enabled,omitempty"`
}

// Dispatch replays a single action. ActionOpen resynchronizes from committed
// and ActionApply commits through commit.
func (d *Draft) Dispatch(action Action, committed Selection, commit func(Selection)) error {
	switch action.Type {
	case ActionOpen:
		d.Open(committed)
	case ActionSelectCategory:
		d.SelectCategory(action.Value)
	case ActionToggleSubCategory:
		d.ToggleSubCategory(action.Value)
	case ActionToggleBrand:
		d.ToggleBrand(action.Value)
	case ActionSetPriceRange:
		d.SetPriceRange(action.Value)
	case ActionSetRating:
		d.SetRating(action.Value)
	case ActionSetInStock:
		d.SetInStock(action.Enabled)
	case ActionReset:
		d.Reset()
	case ActionApply:
		d.Apply(commit)
	case ActionClose:
		d.Close()
	default:
		return domainerrors.ErrInvalidArgument.WithDetails("unknown filter action: " + string(action.Type))
	}

	return nil
}

func toggle(current, value string) string {
	if current == value {
		return ""
	}

	return value
}
