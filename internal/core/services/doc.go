// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - ExtractionService: decode, normalise, reconstruct and save a bank
//   - ValidationService: check a bank and build the hide list
//   - HistoryService: read recorded runs
//   - SettingsService: typed access to the configuration store
//
// Services are pure Go with no CGO.
package services
