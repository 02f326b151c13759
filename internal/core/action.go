package core

// Kind identifies a semantic player action, abstracted from physical key
// presses. The platform layer maps raw input to actions; the world consumes
// exactly one action per invocation.
type Kind int

const (
	KindNone Kind = iota
	KindMove
	KindToggleInventory
	KindInventoryUp
	KindInventoryDown
	KindUseConsumable
	KindToggleStats
	KindToggleInvTab
	KindConfirm
	KindInteract
	KindChoice
	KindBattleOption
	KindQuit
)

// String returns a human-readable name for the action kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMove:
		return "Move"
	case KindToggleInventory:
		return "ToggleInventory"
	case KindInventoryUp:
		return "InventoryUp"
	case KindInventoryDown:
		return "InventoryDown"
	case KindUseConsumable:
		return "UseConsumable"
	case KindToggleStats:
		return "ToggleStats"
	case KindToggleInvTab:
		return "ToggleInvTab"
	case KindConfirm:
		return "Confirm"
	case KindInteract:
		return "Interact"
	case KindChoice:
		return "Choice"
	case KindBattleOption:
		return "BattleOption"
	case KindQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Action is one discrete player input with its payload. Only the fields
// relevant to the Kind are meaningful; the rest stay zero.
type Action struct {
	Kind Kind

	// DX, DY are the movement delta for KindMove, each in {-1, 0, 1}.
	DX, DY int

	// Choice is the single-character response for KindChoice.
	Choice rune

	// Option is the selected battle option (1..3) for KindBattleOption.
	Option int

	// Penalty reports that the player took too long to pick a battle
	// option; the enemy acts first this turn regardless of speed.
	Penalty bool
}

// Move builds a movement action.
func Move(dx, dy int) Action {
	return Action{Kind: KindMove, DX: dx, DY: dy}
}

// Choice builds a single-character dialogue choice action.
func Choice(c rune) Action {
	return Action{Kind: KindChoice, Choice: c}
}

// BattleOption builds a battle menu action.
func BattleOption(option int, penalty bool) Action {
	return Action{Kind: KindBattleOption, Option: option, Penalty: penalty}
}

// Simple builds a payload-free action of the given kind.
func Simple(k Kind) Action {
	return Action{Kind: k}
}
