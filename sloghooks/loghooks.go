// Package sloghooks logs clipboard events through log/slog. Entry ids are
// redacted to SHA-256 prefixes by default so logs never tie a rejection to
// a usable id, and noisy events (key probes) can be sampled.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/clipvault"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	KeyRejectEvery uint64
	DuplicateEvery uint64
	// Optional id redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	keyRejectCtr atomic.Uint64
	duplicateCtr atomic.Uint64
}

var _ clipvault.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(id string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(id)
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DuplicateRejected(id string) {
	if h.l == nil || !sample(h.opts.DuplicateEvery, &h.duplicateCtr) {
		return
	}
	h.l.Info("clipvault.duplicate_rejected",
		"id", h.redact(id))
}

func (h *Hooks) KeyRejected(id string) {
	if h.l == nil || !sample(h.opts.KeyRejectEvery, &h.keyRejectCtr) {
		return
	}
	h.l.Warn("clipvault.key_rejected",
		"id", h.redact(id))
}

func (h *Hooks) DecodeFailure(id string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("clipvault.decode_failure",
		"id", h.redact(id),
		"err", err)
}

func (h *Hooks) LookupError(id string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("clipvault.lookup_error",
		"id", h.redact(id),
		"err", err)
}
