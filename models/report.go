// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package models

// Stage identifies the pipeline stage a key record was in when it failed.
type Stage string

const (
	// StageFetch covers attachment lookup and download.
	StageFetch Stage = "fetch"

	// StageDecrypt covers passphrase decryption of encrypted key material.
	StageDecrypt Stage = "decrypt"

	// StageRegister covers handing the key material to the SSH agent.
	StageRegister Stage = "register"
)

// KeyState is the terminal state of one key record after the pipeline has
// processed it. Every record moves Resolved → Fetched → {Decrypted |
// Passthrough} → Registered, or drops into Failed from any stage.
type KeyState int

const (
	// StateResolved means the record was built but not yet processed.
	StateResolved KeyState = iota

	// StateFetched means the key material was downloaded from the vault.
	StateFetched

	// StateDecrypted means encrypted key material was decrypted with a
	// stored or prompted passphrase.
	StateDecrypted

	// StatePassthrough means the key material was already unencrypted and
	// was handed to the agent byte-for-byte as fetched.
	StatePassthrough

	// StateRegistered means the agent accepted the key (or already held it).
	StateRegistered

	// StateFailed means the record failed; FailedStage and Reason on the
	// [Outcome] say where and why.
	StateFailed
)

// String returns the lower-case state name used in summary output.
func (s KeyState) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateFetched:
		return "fetched"
	case StateDecrypted:
		return "decrypted"
	case StatePassthrough:
		return "passthrough"
	case StateRegistered:
		return "registered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of processing one [KeyRecord].
type Outcome struct {
	// Record is the key record the outcome belongs to.
	Record KeyRecord

	// State is the terminal state of the record.
	State KeyState

	// FailedStage is the stage the record failed in. Only meaningful when
	// State is [StateFailed].
	FailedStage Stage

	// Reason is a human-readable failure description. Only meaningful when
	// State is [StateFailed]. Never contains key material.
	Reason string

	// Fingerprint is the SHA256 fingerprint of the registered key, when it
	// could be computed.
	Fingerprint string

	// AuthorizedKey is the single-line public key of the registered key,
	// when it could be computed. Consumed by the clipboard option.
	AuthorizedKey string

	// AlreadyLoaded reports that the agent already held the key and no new
	// add operation was performed. Counts as registered.
	AlreadyLoaded bool
}

// RegisteredOutcome builds a successful terminal outcome for record.
func RegisteredOutcome(record KeyRecord, fingerprint string) Outcome {
	return Outcome{
		Record:      record,
		State:       StateRegistered,
		Fingerprint: fingerprint,
	}
}

// FailedOutcome builds a failed terminal outcome for record.
func FailedOutcome(record KeyRecord, stage Stage, reason string) Outcome {
	return Outcome{
		Record:      record,
		State:       StateFailed,
		FailedStage: stage,
		Reason:      reason,
	}
}

// Report aggregates the terminal outcomes of one pipeline run. Counting is
// a pure fold over the outcome list; the report carries no other state.
type Report struct {
	// Outcomes holds one terminal outcome per resolved key record, in
	// processing order.
	Outcomes []Outcome

	// Skipped counts items excluded at resolution time (missing private-key
	// field). Skipped items never produce an outcome.
	Skipped int
}

// Registered returns the number of keys the agent ended up holding,
// including keys it already held before the run.
func (r Report) Registered() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == StateRegistered {
			n++
		}
	}
	return n
}

// Failed returns the number of keys that ended in [StateFailed].
func (r Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == StateFailed {
			n++
		}
	}
	return n
}

// Empty reports whether the run had no key records to process at all.
func (r Report) Empty() bool {
	return len(r.Outcomes) == 0
}
