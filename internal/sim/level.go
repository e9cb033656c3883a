package sim

// Item type tags, matching the original's level_data.h constants.
type ItemType uint8

const (
	ItemCorkscrew    ItemType = 0
	ItemDoorKey      ItemType = 1
	ItemBoots        ItemType = 2
	ItemLantern      ItemType = 3
	ItemTeleportWand ItemType = 4
	ItemGems         ItemType = 5
	ItemCrown        ItemType = 6
	ItemGold         ItemType = 7
	ItemBlastolaCola ItemType = 8
	ItemShield       ItemType = 14
	ItemUnused       ItemType = 0xFF
)

// ExitUnused / DoorUnused mark an absent side exit or door slot.
const (
	ExitUnused = 0xFF
	DoorUnused = 0xFF
)

// Door connects one stage's coincidence point to a target level/stage.
type Door struct {
	X, Y         uint8
	TargetLevel  LevelNumber
	TargetStage  uint8
}

// Unused reports whether this door slot is empty.
func (d Door) Unused() bool {
	return d.X == DoorUnused || d.Y == DoorUnused
}

// EnemyRecord is one stage's static enemy spawn descriptor: which sprite
// sheet slot to use and which of the five tagged behaviors to dispatch.
type EnemyRecord struct {
	ShpIndex uint8
	Behavior Behavior
}

// Unused reports whether this enemy slot is empty (no enemy to spawn here).
func (e EnemyRecord) Unused() bool {
	return e.Behavior.Kind() == BehaviorUnused
}

// Item describes the single optional pickup in a stage.
type Item struct {
	Type ItemType
	X, Y uint8
}

// Stage is one 128x10 map: its item, side exits, up to three doors, and up
// to four enemy spawn slots.
type Stage struct {
	Item    Item
	ExitL   uint8 // target stage number, or ExitUnused
	ExitR   uint8
	Doors   [MaxDoors]Door
	Enemies [MaxEnemies]EnemyRecord
	Tiles   *TileGrid
}

// ShpDescriptor carries the animation metadata from a decoded .SHP sprite
// sheet: how many distinct frames it has and how left/right facing and
// looping vs. alternating animation map onto those frames.
type ShpDescriptor struct {
	NumDistinctFrames uint8
	Horizontal        SpriteHorizontal
	Animation         SpriteAnimation
}

// SpriteHorizontal selects how a sprite sheet represents left/right facing.
type SpriteHorizontal uint8

const (
	SpriteHorizontalDuplicated SpriteHorizontal = 1
	SpriteHorizontalSeparate   SpriteHorizontal = 2
)

// SpriteAnimation selects how an animation index maps to a frame.
type SpriteAnimation uint8

const (
	SpriteAnimationLoop      SpriteAnimation = 0
	SpriteAnimationAlternate SpriteAnimation = 1
)

// Level is a tileset + three stages + up to four enemy sprite descriptors.
type Level struct {
	Number        LevelNumber
	LastPassable  uint8
	DoorTileUL    uint8
	DoorTileUR    uint8
	DoorTileLL    uint8
	DoorTileLR    uint8
	Shp           [4]ShpDescriptor
	Stages        [3]Stage
}

// FrameIndex resolves an animation index and facing into a concrete sprite
// frame index, given a sprite sheet's distinct-frame count and metadata.
// Mirrors the original's frame-selection rules for SHP sprite sheets:
// ALTERNATE animation mirrors back across the frame list; DUPLICATED
// horizontal re-uses the left-facing frames for right facing; SEPARATE
// doubles the table, appending right-facing frames after the left ones.
func FrameIndex(desc ShpDescriptor, animIndex uint8, facing Facing) int {
	n := int(desc.NumDistinctFrames)
	if n == 0 {
		return 0
	}

	idx := int(animIndex)
	if desc.Animation == SpriteAnimationAlternate && n > 1 {
		period := 2 * (n - 1)
		if period > 0 {
			idx = idx % period
			if idx >= n {
				idx = period - idx
			}
		}
	} else {
		idx = idx % n
	}

	if facing == FacingRight && desc.Horizontal == SpriteHorizontalSeparate {
		idx += n
	}
	return idx
}
