package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.555))
	assert.Equal(t, 10.55, RoundWithTwoDecimalPlace(10.554))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(99.999))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
	assert.Equal(t, 75.0, RoundWithOneDecimalPlace(75.04))
	assert.Equal(t, 75.1, RoundWithOneDecimalPlace(75.05))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(100.0/3))
}
