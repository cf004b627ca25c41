// Package pollengine implements ranked-choice polls inside the polling
// context.
//
// The module owns the poll aggregate and its vote-recording protocol: the
// three-stage lifecycle (preparation, voting, finished) computed from the
// schedule, and the validation that turns a partial set of option rankings
// into a complete, persisted vote. Business rules stay in the domain and
// application layers; infrastructure is isolated behind ports and adapters.
package pollengine
