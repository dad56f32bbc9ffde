package system

import (
	"testing"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/levels"
)

func TestCameraSystemCentresLevel(t *testing.T) {
	tests := []struct {
		name  string
		zoom  float64
		wantX float64
		wantY float64
	}{
		{name: "zoom one", zoom: 1, wantX: 64 - 160, wantY: 32 - 120},
		{name: "zoom two", zoom: 2, wantX: 64 - 80, wantY: 32 - 60},
		{name: "zero zoom treated as one", zoom: 0, wantX: 64 - 160, wantY: 32 - 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			lvl := &levels.Level{Rows: []string{"####", "#~~#"}}
			if _, err := entity.LoadLevelToWorld(w, lvl, entity.LevelOptions{TileSize: 32}); err != nil {
				t.Fatal(err)
			}
			cam, err := entity.NewCamera(w, tt.zoom)
			if err != nil {
				t.Fatal(err)
			}

			NewCameraSystem(320, 240).Update(w)

			got, ok := ecs.Get(w, cam, component.TransformComponent)
			if !ok {
				t.Fatal("camera lost its transform")
			}
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Fatalf("camera at (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraSystemWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	NewCameraSystem(320, 240).Update(w)
}
