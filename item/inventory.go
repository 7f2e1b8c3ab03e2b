package item

import (
	"fmt"
	"sort"
)

type invEntry struct {
	Item  Item `json:"item"`
	Count int  `json:"count"`
}

// Inventory is a slot-lettered pack. Slots run a-z and are handed out
// in order, reusing an item's previous slot when it is still free.
type Inventory struct {
	NextSlot byte               `json:"next_slot"`
	Slots    map[byte]*invEntry `json:"slots"`
}

func NewInventory() *Inventory {
	return &Inventory{NextSlot: 'a', Slots: map[byte]*invEntry{}}
}

func (inv *Inventory) setNextSlot() {
	slot := inv.NextSlot
	for {
		slot++
		if slot > 'z' {
			slot = 'a'
		}
		if _, taken := inv.Slots[slot]; !taken {
			inv.NextSlot = slot
			return
		}
		if slot == inv.NextSlot {
			// Pack is full.
			inv.NextSlot = 0
			return
		}
	}
}

func (inv *Inventory) toggleLoaded() {
	for _, e := range inv.Slots {
		if e.Item.Equipped && e.Item.Type == Firearm {
			e.Item.Loaded = !e.Item.Loaded
			return
		}
	}
}

func (inv *Inventory) FirearmFired()  { inv.toggleLoaded() }
func (inv *Inventory) ReloadFirearm() { inv.toggleLoaded() }

func (inv *Inventory) ActiveLightSource() bool {
	for _, e := range inv.Slots {
		if e.Item.Type == Light && e.Item.Activated {
			return true
		}
	}
	return false
}

// TickFuel burns one turn of fuel from every lit light and returns the
// ones that just guttered out. Spent torches crumble away entirely.
func (inv *Inventory) TickFuel() []Item {
	var drained []Item
	var spentTorches []byte
	for slot, e := range inv.Slots {
		if e.Item.Activated && e.Item.Fuel > 0 {
			e.Item.Fuel--
			if e.Item.Fuel == 0 {
				e.Item.Activated = false
				if e.Item.Name == "torch" {
					spentTorches = append(spentTorches, slot)
				}
				drained = append(drained, e.Item)
			}
		}
	}
	for _, slot := range spentTorches {
		inv.RemoveCount(slot, 1)
	}
	return drained
}

func (inv *Inventory) EquippedMagicEyePatch() bool {
	for _, e := range inv.Slots {
		if e.Item.Equipped && e.Item.Name == "magic eye patch" {
			return true
		}
	}
	return false
}

func (inv *Inventory) EquippedFirearm() (Item, bool) {
	return inv.equippedOfType(Firearm)
}

func (inv *Inventory) EquippedWeapon() (Item, bool) {
	return inv.equippedOfType(Weapon)
}

func (inv *Inventory) EquippedFetish() (Item, bool) {
	return inv.equippedOfType(Fetish)
}

func (inv *Inventory) equippedOfType(t Type) (Item, bool) {
	for _, e := range inv.Slots {
		if e.Item.Equipped && e.Item.Type == t {
			return e.Item, true
		}
	}
	return Item{}, false
}

func (inv *Inventory) typeEquipped(t Type) bool {
	_, ok := inv.equippedOfType(t)
	return ok
}

func (inv *Inventory) TotalArmourValue() int {
	sum := 0
	for _, e := range inv.Slots {
		if e.Item.Equipped {
			sum += e.Item.ArmourValue
		}
	}
	return sum
}

func (inv *Inventory) lightTorchFromStack(slot byte) string {
	stack := inv.RemoveCount(slot, 1)
	torch := stack[0]
	torch.Activated = true
	torch.Stackable = false
	inv.Add(torch)
	return "You light the torch."
}

// ToggleSlot equips, removes, lights or snuffs the item in slot. The
// second return reports whether the action cost a turn.
func (inv *Inventory) ToggleSlot(slot byte) (string, bool) {
	e, ok := inv.Slots[slot]
	if !ok {
		return "You do not have that item!", false
	}

	if !e.Item.Equipable() && e.Item.Type != Light {
		return "You cannot equip or use that!", false
	}

	if !e.Item.Equipped && inv.typeEquipped(e.Item.Type) {
		switch e.Item.Type {
		case Weapon:
			return "You are already holding a weapon.", false
		case Firearm:
			return "You are already holding a gun.", false
		case Hat:
			return "You are already wearing a hat.", false
		case Coat:
			return "You are already wearing a coat.", false
		case EyePatch:
			return "You are already wearing an eye patch.", false
		case Fetish:
			return "Ye can benefit from just one fetish at a time.", false
		}
	}

	if e.Item.Type == Light {
		if e.Item.Fuel == 0 {
			return fmt.Sprintf("Your %s is out of fuel.", e.Item.Name), false
		}
		if e.Item.Name == "torch" && e.Count > 1 {
			return inv.lightTorchFromStack(slot), true
		}
		e.Item.Activated = !e.Item.Activated
		if e.Item.Activated {
			return "You ignite the " + e.Item.Name + ".", true
		}
		return "You extinguish the " + e.Item.Name + ".", true
	}

	e.Item.Equipped = !e.Item.Equipped
	if e.Item.Equipped {
		return "You equip the " + e.Item.Name + ".", true
	}
	return "You unequip the " + e.Item.Name + ".", true
}

// FindAmmo pulls one bullet out of the pack if there is any.
func (inv *Inventory) FindAmmo() bool {
	for slot, e := range inv.Slots {
		if e.Item.Type == Bullet {
			inv.RemoveCount(slot, 1)
			return true
		}
	}
	return false
}

// RemoveCount takes up to count items out of slot. Each removed item
// remembers the slot it came from.
func (inv *Inventory) RemoveCount(slot byte, count int) []Item {
	e, ok := inv.Slots[slot]
	if !ok {
		return nil
	}

	max := count
	if count < e.Count {
		e.Count -= count
	} else {
		max = e.Count
		delete(inv.Slots, slot)
		if inv.NextSlot == 0 {
			inv.NextSlot = slot
		}
	}

	items := make([]Item, max)
	for j := range items {
		i := e.Item
		i.PrevSlot = slot
		items[j] = i
	}
	return items
}

// Remove empties slot entirely. The caller must know the slot exists.
func (inv *Inventory) Remove(slot byte) Item {
	e := inv.Slots[slot]
	delete(inv.Slots, slot)
	if inv.NextSlot == 0 {
		inv.NextSlot = slot
	}
	i := e.Item
	i.PrevSlot = slot
	return i
}

func (inv *Inventory) TypeInSlot(slot byte) (Type, bool) {
	e, ok := inv.Slots[slot]
	if !ok {
		return 0, false
	}
	return e.Item.Type, true
}

func (inv *Inventory) PeekAt(slot byte) (Item, bool) {
	e, ok := inv.Slots[slot]
	if !ok {
		return Item{}, false
	}
	return e.Item, true
}

func (inv *Inventory) CountInSlot(slot byte) int {
	e, ok := inv.Slots[slot]
	if !ok {
		return 0
	}
	return e.Count
}

func (inv *Inventory) CountOfItem(name string) (int, byte, bool) {
	for slot, e := range inv.Slots {
		if e.Item.Name == name {
			return e.Count, slot, true
		}
	}
	return 0, 0, false
}

func (inv *Inventory) Add(i Item) {
	if i.Stackable {
		for _, e := range inv.Slots {
			if e.Item.SameAs(i) && e.Item.Stackable {
				e.Count++
				return
			}
		}
	}

	if i.PrevSlot != 0 {
		if _, taken := inv.Slots[i.PrevSlot]; !taken {
			inv.Slots[i.PrevSlot] = &invEntry{Item: i, Count: 1}
			return
		}
	}
	inv.Slots[inv.NextSlot] = &invEntry{Item: i, Count: 1}
	inv.setNextSlot()
}

func (inv *Inventory) Menu() []string {
	slots := make([]byte, 0, len(inv.Slots))
	for slot := range inv.Slots {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	menu := make([]string, 0, len(slots))
	for _, slot := range slots {
		e := inv.Slots[slot]
		if e.Count == 1 {
			menu = append(menu, fmt.Sprintf("%c) a %s", slot, e.Item.FullName()))
		} else {
			menu = append(menu, fmt.Sprintf("%c) %s x%d", slot, e.Item.FullName(), e.Count))
		}
	}
	return menu
}
