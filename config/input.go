package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical preview action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMove
	ActionSprint
	ActionJump
	ActionCombatStance
	ActionPunch
	ActionSwing
	ActionBow
	ActionCast
	ActionSummon
	ActionFish
	ActionReel
	ActionPickup
	ActionSkin
	ActionLedge
	ActionWave
	ActionLeftWave
	ActionInteract
	ActionTalk
	ActionDrag
	ActionDie
	ActionCycleItem
	ActionTimeScale
	ActionToggleSkirt
	ActionToggleDebug
	ActionHeadLook
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMove: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionCombatStance: {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionPunch: {
				Keys: []ebiten.Key{ebiten.KeyZ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionSwing: {
				Keys: []ebiten.Key{ebiten.KeyX},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionBow:         {Keys: []ebiten.Key{ebiten.KeyB}},
			ActionCast:        {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionSummon:      {Keys: []ebiten.Key{ebiten.KeyV}},
			ActionFish:        {Keys: []ebiten.Key{ebiten.KeyG}},
			ActionReel:        {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionPickup:      {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionSkin:        {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionLedge:       {Keys: []ebiten.Key{ebiten.KeyL}},
			ActionWave:        {Keys: []ebiten.Key{ebiten.Key1}},
			ActionLeftWave:    {Keys: []ebiten.Key{ebiten.Key2}},
			ActionInteract:    {Keys: []ebiten.Key{ebiten.KeyI}},
			ActionTalk:        {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionDrag:        {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionDie:         {Keys: []ebiten.Key{ebiten.KeyDelete, ebiten.KeyBackspace}},
			ActionCycleItem:   {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionTimeScale:   {Keys: []ebiten.Key{ebiten.KeyPeriod}},
			ActionToggleSkirt: {Keys: []ebiten.Key{ebiten.KeyO}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionHeadLook:    {Keys: []ebiten.Key{ebiten.KeyH}},
		},
	}
}
