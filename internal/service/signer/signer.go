// Package signer orchestrates the two-round threshold-signing flow: a
// presign session, then a sign session over the 32 seal-hash bytes. Each
// round is submitted once and polled to completion; a round that times out
// restarts the whole session from presign, once.
package signer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ikatensei/relayer-backend/internal/ledger/custody"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/poll"
	"github.com/ikatensei/relayer-backend/internal/relay"
)

// Config bounds the signing rounds.
type Config struct {
	// PresignDeadline and SignDeadline are the per-round completion bounds.
	PresignDeadline time.Duration
	SignDeadline    time.Duration
	// PollInterval between session status probes.
	PollInterval time.Duration
}

// Signer produces threshold signatures over seal hashes.
type Signer struct {
	custodian Custodian
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
}

// New constructs a Signer.
func New(custodian Custodian, metrics Metrics, logger *zap.Logger, cfg Config) (*Signer, error) {
	if custodian == nil {
		return nil, errors.New("custodian is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if cfg.PresignDeadline == 0 {
		cfg.PresignDeadline = 2 * time.Minute
	}
	if cfg.SignDeadline == 0 {
		cfg.SignDeadline = 2 * time.Minute
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return &Signer{
		custodian: custodian,
		metrics:   metrics,
		logger:    logger.Named("signer"),
		cfg:       cfg,
	}, nil
}

// ObtainSignature runs a full presign+sign session for hash and returns the
// raw signature bytes. One timed-out session is restarted from scratch; a
// second timeout is returned to the caller, wrapping the round's sentinel.
func (s *Signer) ObtainSignature(ctx context.Context, hash model.SealHash) ([]byte, error) {
	signature, err := s.runSession(ctx, hash)
	if err == nil {
		return signature, nil
	}
	if !errors.Is(err, relay.ErrPresignTimeout) && !errors.Is(err, relay.ErrSignTimeout) {
		return nil, err
	}

	// A timed-out round means the presign material may be consumed or
	// stale, so the restart begins from a fresh presign.
	s.metrics.ObserveSessionRestart()
	s.logger.Warn("signing session timed out, restarting",
		zap.String("sealHash", hash.String()),
		zap.Error(err))

	signature, err = s.runSession(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("restarted signing session: %w", err)
	}
	return signature, nil
}

func (s *Signer) runSession(ctx context.Context, hash model.SealHash) ([]byte, error) {
	presignHandle, err := s.presignRound(ctx)
	if err != nil {
		return nil, err
	}

	signHandle, err := s.signRound(ctx, presignHandle, hash)
	if err != nil {
		return nil, err
	}

	signature, err := s.custodian.SessionSignature(ctx, signHandle)
	if err != nil {
		return nil, fmt.Errorf("fetch signature for %s: %w", hash, err)
	}
	return signature, nil
}

func (s *Signer) presignRound(ctx context.Context) (handle string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRound("presign", err, started)
	}()

	handle, err = s.custodian.RequestPresign(ctx)
	if err != nil {
		return "", err
	}
	if err = s.awaitSession(ctx, handle, "presign", s.cfg.PresignDeadline); err != nil {
		var timeout *poll.TimeoutError
		if errors.As(err, &timeout) {
			return "", fmt.Errorf("presign session %s: %w", handle, relay.ErrPresignTimeout)
		}
		return "", err
	}
	return handle, nil
}

func (s *Signer) signRound(ctx context.Context, presignHandle string, hash model.SealHash) (handle string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRound("sign", err, started)
	}()

	// The signed message is exactly the 32 seal-hash bytes.
	handle, err = s.custodian.RequestSign(ctx, presignHandle, hash[:])
	if err != nil {
		return "", err
	}
	if err = s.awaitSession(ctx, handle, "sign", s.cfg.SignDeadline); err != nil {
		var timeout *poll.TimeoutError
		if errors.As(err, &timeout) {
			return "", fmt.Errorf("sign session %s: %w", handle, relay.ErrSignTimeout)
		}
		return "", err
	}
	return handle, nil
}

func (s *Signer) awaitSession(ctx context.Context, handle, round string, deadline time.Duration) error {
	return poll.Until(ctx, poll.Config{
		Op:       round + " session " + handle,
		Interval: s.cfg.PollInterval,
		Deadline: deadline,
	}, func(ctx context.Context) (bool, bool, error) {
		state, err := s.custodian.SessionStatus(ctx, handle)
		if err != nil {
			// Status reads ride the next tick; the round deadline still
			// bounds a persistently unreachable custody node.
			return false, false, err
		}
		switch state {
		case custody.SessionCompleted:
			return true, false, nil
		case custody.SessionFailed:
			return false, true, fmt.Errorf("%s session %s failed on the custody ledger", round, handle)
		default:
			return false, false, nil
		}
	})
}
