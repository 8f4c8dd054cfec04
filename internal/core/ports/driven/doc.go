// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Decoder: Resolves the text encoding of raw document bytes
//   - Normaliser: Flattens decoded markup into paragraphs
//   - NormaliserRegistry: Selects the normaliser for a document
//   - QuestionProcessor: One finalisation step applied to a closed draft
//   - Finalizer: Runs the finalisation steps in order
//   - BankStore: Question bank persistence (JSON files)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Extraction and validation history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser or postprocessor package
package driven
