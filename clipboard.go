package clipvault

import (
	"context"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/clipvault/pad"
	"github.com/unkn0wn-root/clipvault/store"
	"github.com/unkn0wn-root/clipvault/verify"
)

type service struct {
	store store.Store
	log   Logger
	hooks Hooks
}

func newService(opts Options) (*service, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("clipvault: store is required")
	}

	s := &service{store: opts.Store}

	// defaults
	s.log = opts.Logger
	if s.log == nil {
		s.log = NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = NopHooks{}
	}

	return s, nil
}

func (s *service) Close(ctx context.Context) error {
	return s.store.Close(ctx)
}

func (s *service) Write(ctx context.Context, id string, content, key []byte) error {
	e := store.Entry{ID: id, Content: content}
	if len(key) > 0 {
		encoded, err := pad.Apply(key, content)
		if err != nil {
			return err
		}
		e.Content = encoded
		e.Protected = true
		e.Key = key
	}

	if err := s.store.Insert(ctx, e); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.hooks.DuplicateRejected(id)
			s.log.Debug("write rejected (duplicate id)", Fields{"id": id})
		}
		return err
	}

	s.log.Debug("entry stored", Fields{"id": id, "protected": e.Protected, "size": len(e.Content)})
	return nil
}

func (s *service) Fetch(ctx context.Context, id string) (Fetched, error) {
	e, ok, err := s.store.Lookup(ctx, id)
	if err != nil {
		s.hooks.LookupError(id, err)
		return Fetched{}, err
	}
	if !ok {
		return Fetched{}, ErrNotFound
	}

	f := Fetched{ID: e.ID, Protected: e.Protected}
	if !e.Protected {
		f.Content = e.Content
	}
	// Protected content stays hidden on a plain read: ciphertext handed to
	// an unauthenticated reader is worse than no content at all.
	return f, nil
}

func (s *service) Reveal(ctx context.Context, id string, key []byte) ([]byte, error) {
	e, ok, err := s.store.Lookup(ctx, id)
	if err != nil {
		s.hooks.LookupError(id, err)
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	if !e.Protected {
		return nil, ErrNotEncrypted
	}

	if !verify.Match(key, e.Key) {
		s.hooks.KeyRejected(id)
		s.log.Debug("reveal rejected (key mismatch)", Fields{"id": id})
		return nil, ErrInvalidKey
	}

	plaintext, err := pad.Apply(key, e.Content)
	if err != nil {
		// Unreachable if the write-path length invariant held.
		s.hooks.DecodeFailure(id, err)
		s.log.Error("stored entry failed to decode", Fields{"id": id, "err": err})
		return nil, ErrInternal
	}

	s.log.Debug("entry revealed", Fields{"id": id})
	return plaintext, nil
}
