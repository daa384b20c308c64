package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailyn/transport/internal/pkg/apperrors"
)

func TestErrorFormatting(t *testing.T) {
	err := apperrors.New(apperrors.KindQuotaNotMet, "need 2 more confirmations")
	assert.Equal(t, "quota_not_met: need 2 more confirmations", err.Error())

	wrapped := apperrors.Wrap(apperrors.KindRoutingFailed, "routing engine failed", errors.New("connection refused"))
	assert.Equal(t, "routing_failed: routing engine failed: connection refused", wrapped.Error())
}

func TestKindOf(t *testing.T) {
	err := apperrors.New(apperrors.KindTooFarFromStop, "driver is 120 meters from the stop")

	assert.Equal(t, apperrors.KindTooFarFromStop, apperrors.KindOf(err))
	assert.True(t, apperrors.IsKind(err, apperrors.KindTooFarFromStop))
	assert.False(t, apperrors.IsKind(err, apperrors.KindInvalidCode))
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(errors.New("plain")))
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := apperrors.New(apperrors.KindCommitRejected, "stop is no longer pending")
	outer := fmt.Errorf("completing stop: %w", inner)

	assert.True(t, apperrors.IsKind(outer, apperrors.KindCommitRejected))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.Wrap(apperrors.KindRoutingFailed, "routing engine failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsMatchesOnKind(t *testing.T) {
	a := apperrors.New(apperrors.KindExpired, "window closed at 07:20")
	b := apperrors.New(apperrors.KindExpired, "different message")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, apperrors.New(apperrors.KindWindowClosed, ""))
}

func TestWithDetail(t *testing.T) {
	err := apperrors.New(apperrors.KindQuotaNotMet, "need 2 more confirmations").
		WithDetail("shortfall", 2).
		WithDetail("min_riders", 3)

	detail := apperrors.DetailOf(err)
	assert.Equal(t, 2, detail["shortfall"])
	assert.Equal(t, 3, detail["min_riders"])

	assert.Nil(t, apperrors.DetailOf(errors.New("plain")))
}
