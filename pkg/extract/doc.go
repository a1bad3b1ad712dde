// Package extract is the guided-section handler registry and dispatch
// engine. Independent decoder implementations register a get-info/decode
// handler pair against their section GUID; consumers then route sections to
// the matching pair by GUID lookup.
//
// The registry is built for the earliest boot phase, where neither globals
// nor heap memory are guaranteed writable. It therefore keeps its table in
// whichever candidate storage location first proves writable (pkg/store) and
// re-resolves that location on every operation.
//
// Concurrency: the engine assumes a single effective execution context, as
// no scheduler runs in the phase it targets. Re-entrant registration (one
// decoder's registration triggering another module's) is safe because table
// entries are published only after they are fully written. True
// parallel-thread registration or dispatch is not supported; racing
// initializers on the same candidate are assumed impossible because each
// boot phase has a single effective writer.
package extract
