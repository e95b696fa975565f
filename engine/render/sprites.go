package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
)

// DefaultFace is the bitmap face used for labels and prompts
var DefaultFace = text.NewGoXFace(basicfont.Face7x13)

const (
	spriteW = 110
	spriteH = 90
)

// BuildingColors tints each building kind
var BuildingColors = map[string]color.RGBA{
	"house":      {200, 140, 90, 255},
	"kremlin":    {190, 50, 50, 255},
	"nuclear":    {120, 190, 90, 255},
	"skyscraper": {110, 150, 210, 255},
}

// SpriteManager holds the structure images, keyed by sprite name
// ("house_2", "base_opened", ...)
type SpriteManager struct {
	BuildingSprites map[string]*ebiten.Image
}

// NewSpriteManager draws every structure sprite the rules can produce
func NewSpriteManager(rules config.Rules) *SpriteManager {
	sm := &SpriteManager{BuildingSprites: make(map[string]*ebiten.Image)}
	for _, b := range rules.Buildings {
		body, ok := BuildingColors[b.Name]
		if !ok {
			body = color.RGBA{160, 160, 160, 255}
		}
		for _, tier := range []core.Tier{core.TierIntact, core.TierDamaged, core.TierCritical} {
			sm.BuildingSprites[fmt.Sprintf("%s_%d", b.Name, tier)] = drawBuilding(body, tier)
		}
	}
	sm.BuildingSprites[rules.BaseName] = drawBase(false)
	sm.BuildingSprites[rules.BaseName+"_opened"] = drawBase(true)
	return sm
}

// Get returns the sprite for a key, or nil
func (sm *SpriteManager) Get(key string) *ebiten.Image {
	return sm.BuildingSprites[key]
}

func drawBuilding(body color.RGBA, tier core.Tier) *ebiten.Image {
	img := ebiten.NewImage(spriteW, spriteH)
	shade := body
	if tier == core.TierCritical {
		shade = color.RGBA{body.R / 2, body.G / 2, body.B / 2, 255}
	}
	vector.DrawFilledRect(img, 15, 25, 80, 65, shade, false)
	vector.DrawFilledRect(img, 35, 5, 40, 22, shade, false)
	windows := color.RGBA{250, 240, 170, 255}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			vector.DrawFilledRect(img, float32(22+col*18), float32(33+row*18), 8, 9, windows, false)
		}
	}
	crack := color.RGBA{30, 30, 30, 255}
	if tier >= core.TierDamaged {
		vector.StrokeLine(img, 30, 25, 48, 60, 2, crack, false)
		vector.StrokeLine(img, 48, 60, 40, 89, 2, crack, false)
	}
	if tier == core.TierCritical {
		fire := color.RGBA{255, 120, 20, 230}
		vector.DrawFilledCircle(img, 70, 30, 12, fire, false)
		vector.DrawFilledCircle(img, 30, 50, 9, fire, false)
		vector.StrokeLine(img, 65, 25, 88, 75, 2, crack, false)
	}
	return img
}

func drawBase(opened bool) *ebiten.Image {
	img := ebiten.NewImage(spriteW, spriteH)
	hull := color.RGBA{90, 100, 110, 255}
	vector.DrawFilledRect(img, 5, 55, 100, 35, hull, false)
	vector.DrawFilledCircle(img, 55, 55, 35, hull, false)
	hatch := color.RGBA{40, 45, 50, 255}
	if opened {
		// doors swung out, launch tube visible
		vector.StrokeLine(img, 45, 22, 25, 8, 4, hatch, false)
		vector.StrokeLine(img, 65, 22, 85, 8, 4, hatch, false)
		vector.DrawFilledRect(img, 47, 20, 16, 30, color.RGBA{230, 230, 230, 255}, false)
	} else {
		vector.DrawFilledRect(img, 40, 20, 30, 8, hatch, false)
	}
	return img
}
