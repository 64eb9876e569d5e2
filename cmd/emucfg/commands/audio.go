package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/internal/cli/prompt"
	"github.com/thoreinstein/emucfg/internal/engine"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/viewmodel"
)

var audioInteractive bool

// selectDevice picks a device when audio device is run without a name.
// Tests replace it.
var selectDevice = func(current string, devices []string) (string, error) {
	if audioInteractive && logging.IsTTY(os.Stdin) {
		return prompt.FuzzySelectDevice(current, devices)
	}
	return prompt.SelectDeviceDefault(current, devices)
}

func init() {
	audioDeviceCmd.Flags().BoolVarP(&audioInteractive, "interactive", "i", false,
		"pick the device with a fuzzy finder")

	audioCmd.AddCommand(audioDevicesCmd, audioDeviceCmd, audioVolumeCmd)
	rootCmd.AddCommand(audioCmd)
}

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Edit audio settings",
	Long: `Edit the audio section through the same editing session the settings
dialog uses: changes are made on a copy, then committed, saved and applied
to the engine together.

The engine reports the devices given with --audio-devices (or the
audio_devices option). When the saved device is not among them, the first
one is selected.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var audioDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio output devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAudioDevices(cmd, cmd.OutOrStdout())
	},
}

var audioDeviceCmd = &cobra.Command{
	Use:   "device [name]",
	Short: "Select the audio output device",
	Example: `  # Choose from a numbered list
  emucfg audio device --audio-devices Speakers,Headphones

  # Set directly
  emucfg audio device Headphones --audio-devices Speakers,Headphones`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudioDevice(cmd, args, cmd.OutOrStdout())
	},
}

var audioVolumeCmd = &cobra.Command{
	Use:   "volume <0-100>",
	Short: "Set the master volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudioVolume(cmd, args, cmd.OutOrStdout())
	},
}

func newAudioSession(cmd *cobra.Command) (*viewmodel.AudioConfigViewModel, *engine.Loopback) {
	cfg := loadSettings(cmd)
	core := newEngine(cmd)
	return viewmodel.NewAudioConfigViewModel(cfg, core), core
}

func runAudioDevices(cmd *cobra.Command, w io.Writer) error {
	vm, _ := newAudioSession(cmd)
	defer vm.Discard()

	devices := vm.Devices()
	if len(devices) == 0 {
		fmt.Fprintln(w, "No audio devices reported. Pass --audio-devices or set audio_devices.")
		return nil
	}
	current := vm.Entity().AudioDevice
	for _, d := range devices {
		marker := " "
		if d == current {
			marker = okMark
		}
		fmt.Fprintf(w, "%s %s\n", marker, d)
	}
	return nil
}

func runAudioDevice(cmd *cobra.Command, args []string, w io.Writer) error {
	vm, core := newAudioSession(cmd)

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		picked, err := selectDevice(vm.Entity().AudioDevice, vm.Devices())
		if err != nil {
			vm.Discard()
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return nil
			}
			if errors.Is(err, prompt.ErrNoDevices) {
				return errors.NewUserError(err, "Pass --audio-devices or set audio_devices")
			}
			return err
		}
		name = picked
	}

	if err := vm.SelectDevice(name); err != nil {
		vm.Discard()
		return errors.NewUserError(err, "Run: emucfg audio devices")
	}
	if err := commitEdit(cmd, vm, core); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Audio device: %s\n", okMark, name)
	printSaveNote(w)
	return nil
}

func runAudioVolume(cmd *cobra.Command, args []string, w io.Writer) error {
	volume, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return errors.NewUserError(errors.Wrapf(err, "parsing volume %q", args[0]), "Volume is a whole number from 0 to 100")
	}

	vm, core := newAudioSession(cmd)
	if err := vm.SetVolume(uint32(volume)); err != nil {
		vm.Discard()
		return errors.NewUserError(err, "Volume is a whole number from 0 to 100")
	}
	if err := commitEdit(cmd, vm, core); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Master volume: %d\n", okMark, volume)
	printSaveNote(w)
	return nil
}
