package signer

import (
	"context"
	"time"

	"github.com/ikatensei/relayer-backend/internal/ledger/custody"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Custodian is the threshold-signing network surface the orchestrator
	// drives.
	Custodian interface {
		RequestPresign(ctx context.Context) (string, error)
		SessionStatus(ctx context.Context, handle string) (custody.SessionState, error)
		RequestSign(ctx context.Context, presignHandle string, message []byte) (string, error)
		SessionSignature(ctx context.Context, handle string) ([]byte, error)
	}

	// Metrics records round outcomes and session restarts.
	Metrics interface {
		ObserveRound(round string, err error, started time.Time)
		ObserveSessionRestart()
	}
)
