package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/port"
)

// Mock UI
type uiElement struct {
	label   string
	pos     mgl32.Vec3
	onClick port.ClickHandler
}

type mockUI struct {
	buttons   []uiElement
	labels    []uiElement
	buttonErr error
	labelErr  error
}

func (m *mockUI) CreateButton(ctx context.Context, label string, pos mgl32.Vec3, onClick port.ClickHandler) (string, error) {
	if m.buttonErr != nil {
		return "", m.buttonErr
	}
	m.buttons = append(m.buttons, uiElement{label: label, pos: pos, onClick: onClick})
	return fmt.Sprintf("btn-%d", len(m.buttons)), nil
}

func (m *mockUI) CreateLabel(ctx context.Context, text string, pos mgl32.Vec3) (string, error) {
	if m.labelErr != nil {
		return "", m.labelErr
	}
	m.labels = append(m.labels, uiElement{label: text, pos: pos})
	return fmt.Sprintf("lbl-%d", len(m.labels)), nil
}

func newTestMenu(t *testing.T, ui *mockUI, scene *mockScene, loaded ...string) (*MenuBuilder, *WardrobeService) {
	t.Helper()
	catalog := testCatalog(t)
	svc := NewWardrobeService(catalog, loadedRegistry(loaded...), scene, 0, "spine", zerolog.Nop())
	return NewMenuBuilder(catalog, svc, ui, zerolog.Nop()), svc
}

func TestBuild_OneButtonPerEntryInOrder(t *testing.T) {
	ui := &mockUI{}
	menu, _ := newTestMenu(t, ui, newMockScene())

	if err := menu.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"None", "Red Shirt", "Blue Shirt"}
	if len(ui.buttons) != len(want) {
		t.Fatalf("expected %d buttons, got %d", len(want), len(ui.buttons))
	}
	for i, label := range want {
		if ui.buttons[i].label != label {
			t.Errorf("button %d: expected %q, got %q", i, label, ui.buttons[i].label)
		}
	}
}

func TestBuild_VerticalLayout(t *testing.T) {
	ui := &mockUI{}
	menu, _ := newTestMenu(t, ui, newMockScene())

	if err := menu.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}

	for i := 1; i < len(ui.buttons); i++ {
		step := ui.buttons[i-1].pos.Y() - ui.buttons[i].pos.Y()
		if !mgl32.FloatEqualThreshold(step, menuSpacingY, 1e-6) {
			t.Errorf("uneven spacing between %d and %d: %v", i-1, i, step)
		}
	}

	if len(ui.labels) != 1 {
		t.Fatalf("expected 1 title label, got %d", len(ui.labels))
	}
	title := ui.labels[0]
	if title.label != "Wardrobe" {
		t.Errorf("expected catalog title, got %q", title.label)
	}
	last := ui.buttons[len(ui.buttons)-1]
	if title.pos.Y() >= last.pos.Y() {
		t.Errorf("title (%v) should sit below the last entry (%v)", title.pos.Y(), last.pos.Y())
	}
}

func TestBuild_ClickWearsGarment(t *testing.T) {
	ui := &mockUI{}
	scene := newMockScene()
	menu, svc := newTestMenu(t, ui, scene, "red", "blue")

	if err := menu.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}

	// Buttons follow catalog order: none, red, blue.
	ui.buttons[1].onClick(context.Background(), "user-a")

	att, ok := svc.Worn("user-a")
	if !ok {
		t.Fatal("expected user worn after click")
	}
	if att.GarmentID != "red" {
		t.Errorf("expected red, got %q", att.GarmentID)
	}
}

func TestBuild_ClickFailureDoesNotPanic(t *testing.T) {
	ui := &mockUI{}
	scene := newMockScene()
	scene.attachErr = errors.New("host gone")
	menu, svc := newTestMenu(t, ui, scene, "red")

	if err := menu.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}

	ui.buttons[1].onClick(context.Background(), "user-a")

	if _, ok := svc.Worn("user-a"); ok {
		t.Error("expected user unworn after failed wear")
	}
}

func TestBuild_ButtonErrorPropagates(t *testing.T) {
	ui := &mockUI{buttonErr: errors.New("ui rejected")}
	menu, _ := newTestMenu(t, ui, newMockScene())

	if err := menu.Build(context.Background()); err == nil {
		t.Error("expected build error")
	}
}
