package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-treant-arena/internal/entity"
)

// SceneRenderer рисует арену и все сущности с Renderable.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	colors       SceneColors
	fontFace     font.Face
	arenaImage   *ebiten.Image // Предрендеренный задник арены
}

// NewFace загружает встроенный шрифт нужного размера.
func NewFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

func NewSceneRenderer(screenWidth, screenHeight int, face font.Face, colors SceneColors) *SceneRenderer {
	r := &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		fontFace:     face,
		arenaImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
	// Отрисовываем задник один раз при инициализации
	r.renderArenaImage()
	return r
}

func (r *SceneRenderer) renderArenaImage() {
	r.arenaImage.Clear()
	r.arenaImage.Fill(r.colors.BackgroundColor)
	inset := r.colors.StrokeWidth / 2
	vector.StrokeRect(r.arenaImage, inset, inset,
		float32(r.screenWidth)-r.colors.StrokeWidth, float32(r.screenHeight)-r.colors.StrokeWidth,
		r.colors.StrokeWidth, r.colors.BorderColor, true)
}

// FontFace: шрифт, которым рендерер пишет текст.
func (r *SceneRenderer) FontFace() font.Face {
	return r.fontFace
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.DrawImage(r.arenaImage, nil)

	for id, render := range ecs.Renderables {
		pos, hasPos := ecs.Positions[id]
		if !hasPos {
			continue
		}
		alpha := 1.0
		if enemy, isEnemy := ecs.Enemies[id]; isEnemy {
			alpha = enemy.Alpha
		}
		x, y := float32(pos.X), float32(pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, FadeColor(r.colors.StrokeColor, alpha), true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, FadeColor(render.Color, alpha), true)
	}

	// Приветствия NPC над головой
	for id, npc := range ecs.Npcs {
		pos, hasPos := ecs.Positions[id]
		if !hasPos || npc.TextAlpha <= 0 {
			continue
		}
		r.DrawCenteredText(screen, npc.Greeting, pos.X, pos.Y-24, FadeColor(r.colors.TextColor, npc.TextAlpha))
	}
}

// DrawCenteredText пишет строку с центром в (x, y).
func (r *SceneRenderer) DrawCenteredText(target *ebiten.Image, label string, x, y float64, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, clr)
}
