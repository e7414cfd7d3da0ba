package board

// Drag is the visual-only pick-up state of a kanban card. At most one card
// is held at a time and nothing is written back when it is released.
type Drag struct {
	itemID string
}

// Start picks up the card, replacing any card already held
func (d *Drag) Start(id string) {
	d.itemID = id
}

// End releases the held card
func (d *Drag) End() {
	d.itemID = ""
}

// Active reports whether a card is held
func (d Drag) Active() bool {
	return d.itemID != ""
}

// Holding reports whether id is the held card
func (d Drag) Holding(id string) bool {
	return d.itemID != "" && d.itemID == id
}

// ItemID returns the held card's ID, or "" when none is held
func (d Drag) ItemID() string {
	return d.itemID
}
