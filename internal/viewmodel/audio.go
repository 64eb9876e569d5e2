package viewmodel

import (
	"slices"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
)

// AudioDeviceLister enumerates the output devices the host offers.
type AudioDeviceLister interface {
	GetAudioDevices() []string
}

// AudioConfigViewModel is the editing session behind the audio settings
// page.
type AudioConfigViewModel struct {
	*SectionEditor[*config.AudioConfig]
	devices []string
}

// NewAudioConfigViewModel starts an audio editing session. Unless cfg is in
// design mode it enumerates devices and, when the list is non-empty and the saved
// device is no longer present, selects the first one. An empty list leaves
// the saved device alone.
func NewAudioConfigViewModel(cfg *config.Configuration, lister AudioDeviceLister) *AudioConfigViewModel {
	vm := &AudioConfigViewModel{
		SectionEditor: NewSectionEditor(cfg, config.AudioSection),
	}
	if cfg.DesignMode() || lister == nil {
		return vm
	}

	vm.devices = lister.GetAudioDevices()
	audio := vm.Entity()
	if len(vm.devices) > 0 && !slices.Contains(vm.devices, audio.AudioDevice) {
		cfg.Logger().Info("audio device not found, using first available",
			"saved", audio.AudioDevice, "selected", vm.devices[0])
		audio.AudioDevice = vm.devices[0]
	}
	return vm
}

// Devices returns the enumerated output devices.
func (vm *AudioConfigViewModel) Devices() []string {
	return slices.Clone(vm.devices)
}

// SelectDevice sets the output device on the working copy. When devices
// were enumerated, name must be one of them.
func (vm *AudioConfigViewModel) SelectDevice(name string) error {
	if vm.Closed() {
		return ErrSessionClosed
	}
	if len(vm.devices) > 0 && !slices.Contains(vm.devices, name) {
		return errors.Wrapf(errors.ErrUnknownDevice, "%q", name)
	}
	vm.Entity().AudioDevice = name
	return nil
}

// SetVolume sets the master volume on the working copy.
func (vm *AudioConfigViewModel) SetVolume(volume uint32) error {
	if vm.Closed() {
		return ErrSessionClosed
	}
	if volume > 100 {
		return errors.Wrapf(errors.ErrInvalidConfig, "volume %d is outside 0-100", volume)
	}
	vm.Entity().MasterVolume = volume
	return nil
}
