package view

import (
	"image/color"
	"sort"

	"github.com/1siamBot/nachenblaster/engine/core"
	"golang.org/x/image/colornames"
)

// Look is how one sprite is drawn: a color for pixel frontends and a glyph
// for the terminal
type Look struct {
	Color color.RGBA
	Glyph rune
}

var looks = map[core.SpriteID]Look{
	core.SpriteShip:        {colornames.Deepskyblue, '>'},
	core.SpriteLightAlien:  {colornames.Limegreen, 's'},
	core.SpriteMediumAlien: {colornames.Orange, 'g'},
	core.SpriteHeavyAlien:  {colornames.Crimson, 'S'},
	core.SpriteBolt:        {colornames.Cyan, '-'},
	core.SpriteSpore:       {colornames.Yellowgreen, 'o'},
	core.SpriteTorpedo:     {colornames.Gold, '='},
	core.SpriteLifeGoodie:  {colornames.Hotpink, '+'},
	core.SpriteRepair:      {colornames.Lightgreen, 'R'},
	core.SpriteAmmoGoodie:  {colornames.Khaki, 'T'},
	core.SpriteStar:        {colornames.Lightgray, '.'},
	core.SpriteExplosion:   {colornames.Orangered, '*'},
}

var unknownLook = Look{Color: colornames.Magenta, Glyph: '?'}

// LookOf returns the look for a sprite, falling back to a loud placeholder
func LookOf(id core.SpriteID) Look {
	if l, ok := looks[id]; ok {
		return l
	}
	return unknownLook
}

// DrawOrder returns the live actors sorted back to front: higher depth
// first, ties kept in spawn order
func DrawOrder(actors []core.Actor) []core.Actor {
	out := make([]core.Actor, 0, len(actors))
	for _, a := range actors {
		if a.Alive() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sprite().Depth > out[j].Sprite().Depth
	})
	return out
}
