package command

import (
	"context"
	"errors"
	"testing"

	"github.com/domus-home/domus-core/internal/controller"
	"github.com/domus-home/domus-core/internal/registry"
)

func setupControllers(t *testing.T) (*controller.LightController, *controller.ShutterController) {
	t.Helper()
	base := controller.NewDeviceController(registry.New(), nil)
	return controller.NewLightController(base), controller.NewShutterController(base)
}

func TestTurnOnTurnOff(t *testing.T) {
	lights, _ := setupControllers(t)
	ctx := context.Background()

	id, err := lights.CreateLight(ctx, "Lamp", "")
	if err != nil {
		t.Fatalf("CreateLight() error = %v", err)
	}

	on := &TurnOn{Lights: lights, DeviceID: id}
	if on.Name() != "turn_on" {
		t.Errorf("Name() = %q, want turn_on", on.Name())
	}
	if err := on.Execute(ctx); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if isOn, _ := lights.IsOn(id); !isOn {
		t.Error("IsOn() = false after TurnOn command, want true")
	}

	off := &TurnOff{Lights: lights, DeviceID: id}
	if err := off.Execute(ctx); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if isOn, _ := lights.IsOn(id); isOn {
		t.Error("IsOn() = true after TurnOff command, want false")
	}
}

func TestToggle_Repeatable(t *testing.T) {
	lights, _ := setupControllers(t)
	ctx := context.Background()

	id, _ := lights.CreateLight(ctx, "Lamp", "")
	cmd := &Toggle{Lights: lights, DeviceID: id}

	for i := 0; i < 3; i++ {
		if err := cmd.Execute(ctx); err != nil {
			t.Fatalf("Execute() #%d error = %v", i, err)
		}
	}
	if isOn, _ := lights.IsOn(id); !isOn {
		t.Error("IsOn() = false after three toggles, want true")
	}
}

func TestShutterCommands(t *testing.T) {
	_, shutters := setupControllers(t)
	ctx := context.Background()

	id, err := shutters.CreateShutter(ctx, "Shutter", "")
	if err != nil {
		t.Fatalf("CreateShutter() error = %v", err)
	}

	if err := (&Open{Shutters: shutters, DeviceID: id}).Execute(ctx); err != nil {
		t.Fatalf("Open Execute() error = %v", err)
	}
	if pos, _ := shutters.Position(id); pos != 100 {
		t.Errorf("Position() = %d after open, want 100", pos)
	}

	if err := (&SetPosition{Shutters: shutters, DeviceID: id, Position: 40}).Execute(ctx); err != nil {
		t.Fatalf("SetPosition Execute() error = %v", err)
	}
	if pos, _ := shutters.Position(id); pos != 40 {
		t.Errorf("Position() = %d after set_position, want 40", pos)
	}

	if err := (&Close{Shutters: shutters, DeviceID: id}).Execute(ctx); err != nil {
		t.Fatalf("Close Execute() error = %v", err)
	}
	if pos, _ := shutters.Position(id); pos != 0 {
		t.Errorf("Position() = %d after close, want 0", pos)
	}
}

func TestCommand_UnknownDevice(t *testing.T) {
	lights, _ := setupControllers(t)

	cmd := &TurnOn{Lights: lights, DeviceID: "missing"}
	if err := cmd.Execute(context.Background()); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("Execute() error = %v, want registry.ErrNotFound", err)
	}
}

func TestCommand_WrongCapability(t *testing.T) {
	lights, shutters := setupControllers(t)
	ctx := context.Background()

	shutterID, _ := shutters.CreateShutter(ctx, "Shutter", "")
	cmd := &TurnOn{Lights: lights, DeviceID: shutterID}
	if err := cmd.Execute(ctx); !errors.Is(err, controller.ErrNotSupported) {
		t.Errorf("Execute() error = %v, want ErrNotSupported", err)
	}
}

func TestSequence(t *testing.T) {
	lights, shutters := setupControllers(t)
	ctx := context.Background()

	lampID, _ := lights.CreateLight(ctx, "Lamp", "")
	shutterID, _ := shutters.CreateShutter(ctx, "Shutter", "")

	scene := &Sequence{
		Label: "evening",
		Commands: []Command{
			&TurnOn{Lights: lights, DeviceID: lampID},
			&Close{Shutters: shutters, DeviceID: shutterID},
		},
	}
	if err := scene.Execute(ctx); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if isOn, _ := lights.IsOn(lampID); !isOn {
		t.Error("sequence did not turn the lamp on")
	}
	if pos, _ := shutters.Position(shutterID); pos != 0 {
		t.Error("sequence did not close the shutter")
	}

	t.Run("stops at first failure", func(t *testing.T) {
		bad := &Sequence{Commands: []Command{
			&TurnOn{Lights: lights, DeviceID: "missing"},
			&Open{Shutters: shutters, DeviceID: shutterID},
		}}
		if err := bad.Execute(ctx); err == nil {
			t.Fatal("Execute() error = nil, want lookup failure")
		}
		if pos, _ := shutters.Position(shutterID); pos != 0 {
			t.Error("sequence continued past a failed command")
		}
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if err := scene.Execute(cancelled); !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want context.Canceled", err)
		}
	})
}
