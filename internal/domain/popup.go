package domain

// PopupVisibility lists popups still due for a visitor on a given day, in display order.
type PopupVisibility struct {
	VisitorID string
	Date      string
	PopupIDs  []string
}
