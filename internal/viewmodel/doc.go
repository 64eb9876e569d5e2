// Package viewmodel provides editing sessions over configuration sections.
//
// A session works on a deep copy of one section. Commit swaps the copy into
// the live aggregate, saves, and re-applies the configuration to the core;
// Discard drops it. Either ends the session.
//
// Basic usage:
//
//	vm := viewmodel.NewAudioConfigViewModel(cfg, engine)
//	if err := vm.SetVolume(80); err != nil {
//	    return err
//	}
//	err := vm.Commit(engine)
package viewmodel
