package inventory

// Slot identifies an equipment slot.
type Slot string

const (
	SlotHead     Slot = "head"
	SlotBody     Slot = "body"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
	SlotHands    Slot = "hands"
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotNeck     Slot = "neck"
	SlotRing     Slot = "ring"
	SlotTool     Slot = "tool"
)

var knownSlots = map[Slot]struct{}{
	SlotHead: {}, SlotBody: {}, SlotLegs: {}, SlotFeet: {}, SlotHands: {},
	SlotMainHand: {}, SlotOffHand: {}, SlotNeck: {}, SlotRing: {}, SlotTool: {},
}

// Valid reports whether s is a recognised slot.
func (s Slot) Valid() bool {
	_, ok := knownSlots[s]
	return ok
}

// EquippedItem records an item occupying one of a player's equipment slots.
type EquippedItem struct {
	Slot Slot
	Item Item
}

// Stack is a quantity of one item held in a player's inventory.
//
// Invariant: Quantity >= 1.
type Stack struct {
	PlayerID int64
	ItemID   string
	Quantity int
}
